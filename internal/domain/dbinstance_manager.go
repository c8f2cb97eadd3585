package domain

import "sync"

// DbInstanceManager tracks the current instance and the replica instances
// known from the config server.
type DbInstanceManager struct {
	mu              sync.RWMutex
	currentInstance *DbInstance
	replicas        []DbInstance
}

func NewDbInstanceManager() *DbInstanceManager {
	return &DbInstanceManager{}
}

func (m *DbInstanceManager) SetCurrentInstance(instance *DbInstance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentInstance = instance
}

func (m *DbInstanceManager) CurrentInstance() *DbInstance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentInstance
}

func (m *DbInstanceManager) SetReplicas(replicas []DbInstance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replicas = replicas
}

func (m *DbInstanceManager) Replicas() []DbInstance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]DbInstance, len(m.replicas))
	copy(out, m.replicas)
	return out
}

func (m *DbInstanceManager) GetById(id string) *DbInstance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.currentInstance != nil && m.currentInstance.Id == id {
		return m.currentInstance
	}
	for _, replica := range m.replicas {
		if replica.Id == id {
			return &replica
		}
	}
	return nil
}
