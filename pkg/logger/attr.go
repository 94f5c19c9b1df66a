package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the SDK component emitting the record under the key
// "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// AppID records the application identifier under the key "app_id".
func AppID(id string) slog.Attr {
	return slog.String("app_id", id)
}

// UserID records the subject identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Scheme records a URL scheme under the key "scheme".
func Scheme(scheme string) slog.Attr {
	return slog.String("scheme", scheme)
}

// State records a session state name under the key "state".
func State(state string) slog.Attr {
	return slog.String("state", state)
}

// URL records a URL string under the key "url".
func URL(u string) slog.Attr {
	return slog.String("url", u)
}
