package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
	employeesvc "github.com/stafftrack/attendance-backend-go/internal/service/employee"
	"github.com/stafftrack/attendance-backend-go/internal/service/summary"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	TransferDepartment(w http.ResponseWriter, r *http.Request)
	MarkInactive(w http.ResponseWriter, r *http.Request)
	UpdateSalary(w http.ResponseWriter, r *http.Request)
	UpdatePaymentStatus(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService *employeesvc.Service
	summaryService  *summary.Service
}

func NewEmployeeHandler(employeeService *employeesvc.Service, summaryService *summary.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		summaryService:  summaryService,
	}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employee.ToResponse(result))
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]employee.EmployeeResponse, 0, len(results))
	for _, e := range results {
		resp = append(resp, employee.ToResponse(e))
	}
	response.Success(w, resp)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	result, err := h.employeeService.GetByName(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(result))
}

func (h *employeeHandlerImpl) TransferDepartment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req employee.TransferDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.TransferDepartment(r.Context(), name, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee transferred successfully", employee.ToResponse(result))
}

func (h *employeeHandlerImpl) MarkInactive(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req employee.MarkInactiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.MarkInactive(r.Context(), name, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee marked inactive", employee.ToResponse(result))
}

func (h *employeeHandlerImpl) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req employee.UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateSalary(r.Context(), name, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary updated successfully", employee.ToResponse(result))
}

func (h *employeeHandlerImpl) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	month := chi.URLParam(r, "month")

	var req employee.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdatePaymentStatus(r.Context(), name, month, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment status updated", employee.PaymentStatusResponse{
		Month:  result.Month,
		Status: result.Status.Status,
		Method: result.Status.Method,
	})
}

func (h *employeeHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	results, err := h.summaryService.ForEmployee(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
