package clinicbackend

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CallObserver получает длительность каждого вызова бэкенда (метрики)
type CallObserver interface {
	ObserveBackendCall(operation string, duration time.Duration)
}
