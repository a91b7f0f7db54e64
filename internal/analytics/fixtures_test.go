package analytics

import (
	"time"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/geo"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func line(orderID, customerID, uniqueID, state, city string, purchasedAt time.Time, price float64) OrderLine {
	return OrderLine{
		OrderID:          orderID,
		CustomerID:       customerID,
		CustomerUniqueID: uniqueID,
		CustomerState:    state,
		CustomerCity:     city,
		PurchasedAt:      purchasedAt,
		Price:            price,
	}
}

// exampleOrders: U1 buys twice on the later day in SP, U2 once five days
// earlier in RJ.
func exampleOrders() []OrderLine {
	return []OrderLine{
		line("O1", "C1", "U1", "SP", "sao paulo", at(2018, 8, 10, 10, 0), 100),
		line("O2", "C1", "U1", "SP", "sao paulo", at(2018, 8, 10, 15, 30), 50),
		line("O3", "C2", "U2", "RJ", "rio de janeiro", at(2018, 8, 5, 9, 0), 30),
	}
}

// multiLineOrders has orders with several items and customers spread over
// cities and states.
func multiLineOrders() []OrderLine {
	return []OrderLine{
		line("A", "c1", "u1", "SP", "campinas", at(2018, 1, 1, 8, 0), 10),
		line("A", "c1", "u1", "SP", "campinas", at(2018, 1, 1, 8, 0), 15),
		line("B", "c2", "u1", "SP", "santos", at(2018, 1, 3, 12, 0), 20),
		line("C", "c3", "u2", "SP", "sao paulo", at(2018, 1, 3, 23, 59), 5),
		line("D", "c4", "u3", "MG", "belo horizonte", at(2018, 1, 4, 0, 1), 40),
		line("D", "c4", "u3", "MG", "belo horizonte", at(2018, 1, 4, 0, 1), 40),
		line("E", "c5", "u4", "XX", "nowhere", at(2017, 12, 30, 6, 0), 7.5),
	}
}

func testNames() geo.StateNames {
	return geo.StateNames{"SP": "São Paulo", "MG": "Minas Gerais", "RJ": "Rio de Janeiro"}
}

func testReferences() geo.Table {
	return geo.Table{
		"SP": {ID: "SP", CentroidLatitude: -22.26, CentroidLongitude: -48.73},
		"MG": {ID: "MG", CentroidLatitude: -18.45, CentroidLongitude: -44.67},
	}
}
