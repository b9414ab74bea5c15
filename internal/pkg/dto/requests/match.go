package requests

type RunMatching struct {
	PatientID string `json:"patient_id" validate:"required"`
	IsTest    bool   `json:"is_test"`
}
