package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mkline/storefront/internal/repository"
	"github.com/mkline/storefront/internal/service/employee"
)

func (r *Router) handleAddEmployee(w http.ResponseWriter, req *http.Request) {
	var payload struct {
		EmployeeID string `json:"employeeId"`
		Name       string `json:"name"`
		Salary     string `json:"salary"`
		Position   string `json:"position"`
	}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		writeEmployeeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	record, err := r.employees.Add(req.Context(), employee.AddInput{
		EmployeeID: payload.EmployeeID,
		Name:       payload.Name,
		Salary:     payload.Salary,
		Position:   payload.Position,
	})
	switch {
	case errors.Is(err, employee.ErrMissingEmployeeID):
		writeEmployeeError(w, http.StatusBadRequest, "employeeId is required")
		return
	case errors.Is(err, repository.ErrConflict):
		writeEmployeeError(w, http.StatusConflict, fmt.Sprintf("Employee with ID %s already exists", payload.EmployeeID))
		return
	case err != nil:
		r.logger.Error("add employee failed", "error", err, "employee_id", payload.EmployeeID)
		writeEmployeeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "employee": record})
}

func (r *Router) handleGetEmployee(w http.ResponseWriter, req *http.Request) {
	employeeID := req.URL.Query().Get("employeeId")
	record, err := r.employees.Get(req.Context(), employeeID)
	switch {
	case errors.Is(err, employee.ErrMissingEmployeeID):
		writeEmployeeError(w, http.StatusBadRequest, "employeeId query parameter is required")
		return
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Employee not found"})
		return
	case err != nil:
		r.logger.Error("get employee failed", "error", err, "employee_id", employeeID)
		writeEmployeeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "employee": record})
}

func (r *Router) handleDeleteEmployee(w http.ResponseWriter, req *http.Request) {
	employeeID := req.URL.Query().Get("employeeId")
	err := r.employees.Delete(req.Context(), employeeID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Employee not found"})
		return
	case err != nil:
		r.logger.Error("delete employee failed", "error", err, "employee_id", employeeID)
		writeEmployeeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Employee deleted"})
}
