package monitoring

import (
	"sync"
	"time"
)

// Monitor collects site metrics for the ops dashboard stream.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance.
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value.
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// IncrCounter bumps an integer metric by one, creating it at 1.
func (m *Monitor) IncrCounter(name string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	current, _ := m.metrics[name].(int64)
	m.metrics[name] = current + 1
}

// GetMetric returns a specific metric value.
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics.
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics.
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordPageAssembly records one restaurant page build under its
// template key and notes when the menu came from the demo generator.
func (m *Monitor) RecordPageAssembly(templateKey string, mockMenu bool) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	total, _ := m.metrics["pages_assembled_total"].(int64)
	m.metrics["pages_assembled_total"] = total + 1

	byTemplate, _ := m.metrics["pages_template_"+templateKey].(int64)
	m.metrics["pages_template_"+templateKey] = byTemplate + 1

	if mockMenu {
		mocked, _ := m.metrics["pages_mock_menu_total"].(int64)
		m.metrics["pages_mock_menu_total"] = mocked + 1
	}

	m.metrics["last_page_assembled"] = time.Now().Format(time.RFC3339)
}
