package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
	}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp: time.Now(),
		},
	}
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
	aadhaarPattern      = regexp.MustCompile(`^[0-9]{12}$`)
)

// SanitizeFilename strips path components and any character that is not
// safe inside an object key. Returns "file" if nothing survives.
func SanitizeFilename(name string) string {
	// Drop directory parts regardless of the client's path separator
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = repeatedUnderscores.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}

// ValidateAadhaar checks the 12-digit aadhaar format.
func ValidateAadhaar(aadhaar string) bool {
	return aadhaarPattern.MatchString(aadhaar)
}

// GetParamAsInt64 parses a numeric path parameter.
func GetParamAsInt64(c *gin.Context, paramName string) (int64, error) {
	paramValue := c.Param(paramName)
	intValue, err := strconv.ParseInt(paramValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", paramName)
	}
	if intValue <= 0 {
		return 0, fmt.Errorf("invalid %s", paramName)
	}
	return intValue, nil
}
