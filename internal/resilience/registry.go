package resilience

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// CircuitBreakerRegistry manages the named circuit breakers of the process
type CircuitBreakerRegistry struct {
	breakers map[string]*CircuitBreaker
	configs  map[string]*CircuitBreakerConfig
	logger   *zap.Logger
	mutex    sync.RWMutex
}

// NewCircuitBreakerRegistry creates a new registry
func NewCircuitBreakerRegistry(logger *zap.Logger) *CircuitBreakerRegistry {
	return &CircuitBreakerRegistry{
		breakers: make(map[string]*CircuitBreaker),
		configs:  make(map[string]*CircuitBreakerConfig),
		logger:   logger,
	}
}

// RegisterConfig registers a circuit breaker configuration
func (r *CircuitBreakerRegistry) RegisterConfig(config *CircuitBreakerConfig) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.configs[config.Name] = config
}

// Get returns a circuit breaker by name, creating one if it doesn't exist
func (r *CircuitBreakerRegistry) Get(name string) *CircuitBreaker {
	r.mutex.RLock()
	if cb, ok := r.breakers[name]; ok {
		r.mutex.RUnlock()
		return cb
	}
	r.mutex.RUnlock()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if cb, ok := r.breakers[name]; ok {
		return cb
	}

	config, ok := r.configs[name]
	if !ok {
		config = DefaultCircuitBreakerConfig(name)
	}

	cb := NewCircuitBreaker(config, r.logger)
	r.breakers[name] = cb

	r.logger.Info("Created circuit breaker", zap.String("name", name))
	return cb
}

// States returns the state of every breaker keyed by name
func (r *CircuitBreakerRegistry) States() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]string, len(r.breakers))
	for name, cb := range r.breakers {
		result[name] = cb.State().String()
	}
	return result
}

// Names returns the registered breaker names in order
func (r *CircuitBreakerRegistry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.breakers))
	for name := range r.breakers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset resets all circuit breakers
func (r *CircuitBreakerRegistry) Reset() {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, cb := range r.breakers {
		cb.Reset()
	}
}
