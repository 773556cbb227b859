package telemetry

import "sync/atomic"

// SequenceMetrics fasst Messwerte zur Sequenznutzung zusammen.
type SequenceMetrics struct {
	sourceYields  atomic.Uint64
	pendingYields atomic.Uint64
	enqueued      atomic.Uint64
}

var defaultSequenceMetrics SequenceMetrics

// DefaultSequenceMetrics liefert die globalen Metriken.
func DefaultSequenceMetrics() *SequenceMetrics {
	return &defaultSequenceMetrics
}

// RecordSourceYield zählt einen vom umschlossenen Produzenten gelieferten Wert.
func RecordSourceYield() {
	defaultSequenceMetrics.sourceYields.Add(1)
}

// RecordPendingYield zählt einen aus dem Pending-Puffer gelieferten Wert.
func RecordPendingYield() {
	defaultSequenceMetrics.pendingYields.Add(1)
}

// RecordEnqueue zählt einen an eine Sequenz angehängten Wert.
func RecordEnqueue() {
	defaultSequenceMetrics.enqueued.Add(1)
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *SequenceMetrics) Snapshot() (sourceYields, pendingYields, enqueued uint64) {
	return m.sourceYields.Load(), m.pendingYields.Load(), m.enqueued.Load()
}

// Reset setzt alle Zähler zurück.
func (m *SequenceMetrics) Reset() {
	m.sourceYields.Store(0)
	m.pendingYields.Store(0)
	m.enqueued.Store(0)
}
