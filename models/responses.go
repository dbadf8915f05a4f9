package models

// CredentialStatus reports whether a journal credential exists for the
// authenticated owner. Returned by the credential existence check; it
// deliberately carries no other information about the stored credential.
type CredentialStatus struct {
	Exists bool `json:"exists"`
}

// VerifyResult is the outcome of a journal-password verification.
// Valid is the only signal exposed: a wrong password and a missing
// credential are indistinguishable at the API boundary.
type VerifyResult struct {
	Valid bool `json:"valid"`
}

// HashtagPreview carries the hashtags derived from entry content for the
// live-preview endpoint. The list is read-only and never persisted.
type HashtagPreview struct {
	Hashtags []string `json:"hashtags"`
}
