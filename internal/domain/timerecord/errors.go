package timerecord

import "errors"

var (
	ErrTimeRecordNotFound = errors.New("time record not found")
	ErrInvalidRecordType  = errors.New("recordType must be entrada or salida")
	ErrInvalidDateRange   = errors.New("dateFrom must not be after dateTo")
	ErrInvalidPhotoType   = errors.New("invalid file type: only jpg, jpeg, png allowed")
)
