package presentation

const (
	// IDParam is the route parameter carrying an image identifier.
	IDParam = "id"

	// ReasonTag is the response header carrying a short failure reason.
	ReasonTag = "X-Reason"

	// FileField and TagsField are the multipart form fields of an upload.
	FileField = "file"
	TagsField = "tags"

	// TagQuery is the query parameter of a tag search.
	TagQuery = "tag"
)
