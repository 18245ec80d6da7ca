package registry

import "github.com/labstack/echo/v4"

const requestContextKey = "core_request_registry"

// RequestScope is a per-request key/value store riding on the echo context.
// Unlike GlobalRegistry it needs no locking: a request is handled by one
// goroutine.
type RequestScope struct {
	values map[string]interface{}
}

// RequestRegistry returns the request's scope, creating it on first use.
func RequestRegistry(c echo.Context) *RequestScope {
	if v := c.Get(requestContextKey); v != nil {
		if s, ok := v.(*RequestScope); ok {
			return s
		}
	}
	s := &RequestScope{values: make(map[string]interface{})}
	c.Set(requestContextKey, s)
	return s
}

func (s *RequestScope) Get(key string) (interface{}, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *RequestScope) Set(key string, value interface{}) {
	s.values[key] = value
}
