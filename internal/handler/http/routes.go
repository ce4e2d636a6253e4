// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Timeout(h.requestTimeout))

	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/public/shares/{token}", h.resolveShare)
		r.Post("/api/public/shares/{token}/verify", h.verifySharePassword)

		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/user", func(r chi.Router) {
			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.updateProfile)
			r.Post("/password", h.changePassword)
		})

		r.Get("/api/dashboard", h.dashboard)
		r.Get("/api/favorites", h.listFavorites)

		r.Route("/api/trash", func(r chi.Router) {
			r.Get("/", h.listTrash)
			r.Post("/{entity}/{id}", h.moveToTrash)
			r.Post("/{entity}/{id}/restore", h.restoreFromTrash)
			r.Delete("/{entity}/{id}", h.deletePermanently)
		})

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{id}", h.getNote)
			r.Put("/{id}/content", h.updateNoteContent)
		})

		r.Route("/api/passwords", func(r chi.Router) {
			r.Get("/", h.listPasswords)
			r.Post("/", h.createPassword)
			r.Get("/{id}", h.getPassword)
			r.Put("/{id}/content", h.updatePasswordContent)
			r.Get("/{id}/reveal", h.revealPassword)
		})

		r.Route("/api/folders", func(r chi.Router) {
			r.Get("/", h.listFolders)
			r.Post("/", h.createFolder)
			r.Get("/{id}", h.getFolderContents)
			r.Put("/{id}", h.updateFolder)
		})

		r.Route("/api/documents/{entity}/{id}", func(r chi.Router) {
			r.Put("/title", h.updateTitle)
			r.Put("/favorite", h.setFavorite)
		})

		r.Route("/api/finance", func(r chi.Router) {
			r.Get("/categories", h.listCategories)
			r.Post("/categories", h.createCategory)
			r.Put("/categories/{id}", h.updateCategory)
			r.Delete("/categories/{id}", h.deleteCategory)

			r.Get("/transactions", h.listTransactions)
			r.Post("/transactions", h.createTransaction)
			r.Put("/transactions/{id}", h.updateTransaction)
			r.Patch("/transactions/{id}/status", h.updateTransactionStatus)
			r.Delete("/transactions/{id}", h.deleteTransaction)

			r.Get("/summary", h.monthlySummary)
		})

		r.Route("/api/shares", func(r chi.Router) {
			r.Get("/", h.listShares)
			r.Post("/", h.createShare)
			r.Delete("/{token}", h.deleteShare)
		})
	})

	return router
}
