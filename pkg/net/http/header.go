package http

const (
	ApplicationJsonContentType = "application/json"

	AuthorizationHeaderKey = "Authorization"
	ContentTypeHeaderKey   = "Content-Type"
	AcceptHeaderKey        = "Accept"
)
