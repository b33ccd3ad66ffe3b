package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"github.com/chauhan-akshay123/tracks-api-sqlite-orm/internal/library"
)

// fail answers 404 for library.ErrNotFound and 500 with the error text for
// everything else.
func fail(c *gin.Context, message, notFound string, err error) {
	if errors.Is(err, library.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
}

// pathID reads the :id path parameter. Anything that is not a positive integer
// can never match a row.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, library.ErrNotFound
	}
	return uint(id), nil
}

// coerceID accepts a JSON number or a string holding one, truncating
// fractions. Strings with trailing characters are rejected.
func coerceID(r gjson.Result) (uint, error) {
	switch r.Type {
	case gjson.Number:
		if r.Num < 1 {
			return 0, library.ErrNotFound
		}
		return uint(r.Num), nil
	case gjson.String:
		id, err := strconv.ParseFloat(r.Str, 64)
		if err != nil || id < 1 {
			return 0, library.ErrNotFound
		}
		return uint(id), nil
	default:
		return 0, library.ErrNotFound
	}
}

// bindBody decodes a JSON body into v. An empty body leaves v untouched.
func bindBody(c *gin.Context, v any) error {
	err := c.ShouldBindBodyWithJSON(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
