package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrAccessDenied    = errors.New("access denied to this patient record")
	ErrImageRequired   = errors.New("image file is required")
	ErrImageURLMissing = errors.New("imageUrl is required")
	ErrUploadFailed    = errors.New("image upload failed")
)
