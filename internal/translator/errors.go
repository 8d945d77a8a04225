package translator

import "fmt"

// ProviderUnreachableError means the reachability probe failed; the batch
// must be aborted before any translation call is made.
type ProviderUnreachableError struct {
	Err error
}

func (e *ProviderUnreachableError) Error() string {
	return fmt.Sprintf("translation provider unreachable: %v", e.Err)
}

func (e *ProviderUnreachableError) Unwrap() error { return e.Err }

// TranslationError means a text still failed after all retry attempts.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed after retries: %v", e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }
