// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taibuivan/artgallery/internal/platform/apperr"
	requestutil "github.com/taibuivan/artgallery/internal/platform/request"
	"github.com/taibuivan/artgallery/internal/platform/respond"
)

// FieldArtist labels the violation reported for a null request body.
const FieldArtist = "Artist"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.addArtist)
	router.Get("/{id}", handler.getArtist)
}

func (handler *Handler) addArtist(writer http.ResponseWriter, request *http.Request) {
	// A JSON null body leaves input nil and is rejected by the service.
	var input *Artist
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	stored, err := handler.service.AddArtist(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.Created(writer, stored)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := uuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid artist id",
			apperr.FieldError{Field: FieldID, Message: "Id is invalid."}))
		return
	}

	found, err := handler.service.RetrieveArtistByID(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, toAppError(err))
		return
	}
	respond.OK(writer, found)
}

// toAppError maps the service tiers onto the API error envelope. Anything
// else is returned as is and surfaces as an internal error.
func toAppError(err error) error {
	var (
		validation *ValidationError
		dependency *DependencyError
		notFound   *NotFoundArtistError
	)

	switch {
	case errors.As(err, &notFound):
		return apperr.NotFound("Artist")
	case errors.As(err, &validation):
		if errors.Is(err, ErrNullArtist) {
			return apperr.ValidationError(validation.Error(),
				apperr.FieldError{Field: FieldArtist, Message: ErrNullArtist.Error()})
		}
		return apperr.ValidationError(validation.Error(), validation.Violations().Details()...)
	case errors.As(err, &dependency):
		appError := apperr.Dependency(dependency.Error(), dependency)
		appError.Reported = true
		return appError
	default:
		return err
	}
}
