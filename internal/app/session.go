package app

import "net/http"

type sessionKey string

const (
	SessionKeyOperator = sessionKey("operatorEmail")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *application) contextGetOperator(r *http.Request) string {
	operator, ok := r.Context().Value(SessionKeyOperator).(string)
	if !ok {
		panic("missing operator from context")
	}

	return operator
}
