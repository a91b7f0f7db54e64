package main

import "net/http"

// @Summary		Health check
// @Description	returns the status of the service and the size of the loaded snapshot
// @Tags			Health
// @Produce		json
// @Success		200	{object}	map[string]any
// @Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {

	data := map[string]any{
		"status":  "available",
		"version": "0.1.0",
		"orders":  app.snapshot.Dataset.Len(),
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
