package application

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Nether404/theWebKnot-sub006/domain/store"
)

// identityKey is where the per-installation identity lives in the store.
const identityKey = "identity:installation"

// InstallationIdentity returns the stable per-installation identity,
// creating and persisting one on first use. It is the rate-limit identity
// for unauthenticated callers.
func InstallationIdentity(st store.Store) (string, error) {
	raw, ok, err := st.Get(identityKey)
	if err != nil {
		return "", fmt.Errorf("load installation identity: %w", err)
	}
	if ok && len(raw) > 0 {
		if id, err := uuid.ParseBytes(raw); err == nil {
			return id.String(), nil
		}
		// A corrupt identity is replaced rather than surfaced.
	}

	id := uuid.NewString()
	if err := st.Set(identityKey, []byte(id)); err != nil {
		return "", fmt.Errorf("persist installation identity: %w", err)
	}
	return id, nil
}
