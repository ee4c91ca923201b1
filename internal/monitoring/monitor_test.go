package monitoring

import (
	"testing"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	// Check if our metric is present
	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}

	// Check value
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	// Check uptime presence
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_IncrCounter(t *testing.T) {
	m := NewMonitor()

	m.IncrCounter("orders_placed_total")
	m.IncrCounter("orders_placed_total")

	value, exists := m.GetMetric("orders_placed_total")
	if !exists {
		t.Fatalf("Expected 'orders_placed_total' to be present, but it was not")
	}
	if value != int64(2) {
		t.Errorf("Expected 'orders_placed_total' to be 2, but got %v", value)
	}
}

func TestMonitor_RecordPageAssembly(t *testing.T) {
	m := NewMonitor()

	m.RecordPageAssembly("night-market", false)
	m.RecordPageAssembly("night-market", true)
	m.RecordPageAssembly("ming", false)

	metrics := m.GetMetrics()

	if value := metrics["pages_assembled_total"]; value != int64(3) {
		t.Errorf("Expected 'pages_assembled_total' to be 3, but got %v", value)
	}
	if value := metrics["pages_template_night-market"]; value != int64(2) {
		t.Errorf("Expected 'pages_template_night-market' to be 2, but got %v", value)
	}
	if value := metrics["pages_template_ming"]; value != int64(1) {
		t.Errorf("Expected 'pages_template_ming' to be 1, but got %v", value)
	}
	if value := metrics["pages_mock_menu_total"]; value != int64(1) {
		t.Errorf("Expected 'pages_mock_menu_total' to be 1, but got %v", value)
	}

	// Timestamp is recorded
	if _, exists := metrics["last_page_assembled"]; !exists {
		t.Errorf("Expected 'last_page_assembled' to be present in metrics, but it was not")
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	// Our test metric should be gone, but uptime should still be there
	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// Uptime should still be present (it's added on GetMetrics call)
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}
