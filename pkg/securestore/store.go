package securestore

// Protection declares when a stored value may be read back from disk.
// Implementations map it onto the closest tier their platform offers; the
// Memory implementation records it without enforcing anything.
type Protection int

const (
	// ProtectionAfterFirstUnlock allows reads any time after the device
	// has been unlocked once since boot.
	ProtectionAfterFirstUnlock Protection = iota
	// ProtectionAfterFirstUnlockThisDeviceOnly is ProtectionAfterFirstUnlock
	// without backup migration to other devices.
	ProtectionAfterFirstUnlockThisDeviceOnly
	// ProtectionWhenUnlocked allows reads only while the device is unlocked.
	ProtectionWhenUnlocked
	// ProtectionWhenUnlockedThisDeviceOnly is ProtectionWhenUnlocked
	// without backup migration to other devices.
	ProtectionWhenUnlockedThisDeviceOnly
)

func (p Protection) String() string {
	switch p {
	case ProtectionAfterFirstUnlock:
		return "after_first_unlock"
	case ProtectionAfterFirstUnlockThisDeviceOnly:
		return "after_first_unlock_this_device_only"
	case ProtectionWhenUnlocked:
		return "when_unlocked"
	case ProtectionWhenUnlockedThisDeviceOnly:
		return "when_unlocked_this_device_only"
	default:
		return "unknown"
	}
}

// Store is the secure-storage contract required from the host environment.
// Operations are synchronous and expected to be fast; callers treat a failed
// read as a cache miss and swallow failed writes.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing key
	// is not an error.
	Delete(key string) error
}

// Namespaced wraps a Store so every key gains a "namespace." prefix,
// keeping logical stores that share a backend out of each other's keys.
func Namespaced(s Store, namespace string) Store {
	return &namespaced{inner: s, prefix: namespace + "."}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(key string) ([]byte, error) {
	return n.inner.Get(n.prefix + key)
}

func (n *namespaced) Set(key string, value []byte) error {
	return n.inner.Set(n.prefix+key, value)
}

func (n *namespaced) Delete(key string) error {
	return n.inner.Delete(n.prefix + key)
}
