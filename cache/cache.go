package cache

// Cache - interface for values expiring after a fixed time
type Cache interface {
	setter
	getter
}

type setter interface {
	Set(string, interface{})
}

type getter interface {
	Get(string) (interface{}, bool)
}
