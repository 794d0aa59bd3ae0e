package visa

import "fmt"

// ConfigError reports unusable client TLS material at construction time. The
// next invocation re-attempts construction, so a fixed certificate clears it.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("client config: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TransportError reports a network, TLS handshake, or timeout failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// PartnerError reports a non-2xx response from the partner API. Body holds a
// bounded snippet of the response for the error message.
type PartnerError struct {
	Status int
	Body   string
}

func (e *PartnerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("partner returned status %d", e.Status)
	}
	return fmt.Sprintf("partner returned status %d: %s", e.Status, e.Body)
}

// DecodeError reports a success status whose body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
