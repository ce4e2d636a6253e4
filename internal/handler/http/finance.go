// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mydocs/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodQuery(w, r)
	if !ok {
		return
	}

	transactions, err := h.services.FinanceService.ListTransactions(r.Context(), userID(r), year, month)
	if err != nil {
		writeError(w, r, err, "listing transactions failed")
		return
	}

	writeJSON(w, r, nonNil(transactions), http.StatusOK)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var request models.TransactionRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	transaction, err := h.services.FinanceService.CreateTransaction(r.Context(), userID(r), request)
	if err != nil {
		writeError(w, r, err, "transaction creation failed")
		return
	}

	writeJSON(w, r, transaction, http.StatusCreated)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	var request models.TransactionRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	transaction, err := h.services.FinanceService.UpdateTransaction(r.Context(), userID(r), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err, "transaction update failed")
		return
	}

	writeJSON(w, r, transaction, http.StatusOK)
}

func (h *Handler) updateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	var request models.UpdateTransactionStatusRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	err := h.services.FinanceService.UpdateTransactionStatus(r.Context(), userID(r), chi.URLParam(r, "id"), request.Status)
	if err != nil {
		writeError(w, r, err, "transaction status update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FinanceService.DeleteTransaction(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "transaction delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) monthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodQuery(w, r)
	if !ok {
		return
	}

	summary, err := h.services.FinanceService.MonthlySummary(r.Context(), userID(r), year, month)
	if err != nil {
		writeError(w, r, err, "monthly summary failed")
		return
	}

	writeJSON(w, r, summary, http.StatusOK)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.FinanceService.ListCategories(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "listing categories failed")
		return
	}

	writeJSON(w, r, nonNil(categories), http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var request models.CategoryRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	category, err := h.services.FinanceService.CreateCategory(r.Context(), userID(r), request)
	if err != nil {
		writeError(w, r, err, "category creation failed")
		return
	}

	writeJSON(w, r, category, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var request models.CategoryRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	category, err := h.services.FinanceService.UpdateCategory(r.Context(), userID(r), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err, "category update failed")
		return
	}

	writeJSON(w, r, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FinanceService.DeleteCategory(r.Context(), userID(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "category delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
