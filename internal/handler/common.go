package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	apperrors "welltix/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// formValue reads a form field from the request body. net/http only
// parses bodies for POST, PUT and PATCH, so DELETE bodies are parsed
// here explicitly.
func formValue(c *gin.Context, field string) string {
	r := c.Request
	if r.Method == http.MethodDelete && r.PostForm == nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			return ""
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return ""
		}
		r.PostForm = values
	}
	return r.PostFormValue(field)
}

// formInt parses a required integer form field.
func formInt(c *gin.Context, field string) (int, error) {
	v, err := strconv.Atoi(formValue(c, field))
	if err != nil {
		return 0, apperrors.ErrInvalidInput
	}
	return v, nil
}

// readPosterFile buffers an uploaded poster fully in memory, bounded by
// maxBytes. Returns (nil, nil) when the client submitted no file.
func readPosterFile(c *gin.Context, field string, maxBytes int64) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, apperrors.ErrInvalidInput
	}

	if fileHeader.Size > maxBytes {
		return nil, apperrors.ErrInvalidInput
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return readBounded(src, maxBytes)
}

func readBounded(src multipart.File, maxBytes int64) ([]byte, error) {
	// The size in the part header is client-supplied; the hard stop is
	// the LimitReader.
	data, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, apperrors.ErrInvalidInput
	}
	return data, nil
}
