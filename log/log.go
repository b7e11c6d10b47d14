// golos-labs/golos-bot/log/log.go
package log

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
)

// Logger is the interface components receive for logging.
type Logger interface {
	Info(msg string)
	Error(context string, err error)
}

var (
	mu     sync.RWMutex
	notify func(string)
)

// Init installs a notifier that mirrors error lines to the operator, e.g.
// the admin Telegram chat. Logging works without it; mirroring is best-effort.
func Init(notifier func(string)) {
	mu.Lock()
	notify = notifier
	mu.Unlock()
	log.SetFlags(log.LstdFlags)
}

// Info logs an informational message to the console.
func Info(msg string) {
	log.Printf("[INFO] %s", msg)
}

// Error logs an error to the console and mirrors it to the notifier.
func Error(context string, err error) {
	// Get caller info
	_, file, line, ok := runtime.Caller(1)
	var callerInfo string
	if ok {
		parts := strings.Split(file, "/")
		if len(parts) > 2 {
			file = strings.Join(parts[len(parts)-2:], "/")
		}
		callerInfo = fmt.Sprintf("%s:%d", file, line)
	}

	msg := fmt.Sprintf("[ERROR] in %s: %s\n%v", callerInfo, context, err)
	log.Print(msg)
	post(msg)
}

// Fatal logs an error and then exits the program.
func Fatal(context string, err error) {
	Error(context, err)
	os.Exit(1)
}

func post(msg string) {
	mu.RLock()
	n := notify
	mu.RUnlock()
	if n == nil {
		return
	}
	// Keep mirrored messages well under the platform message size limit.
	if len(msg) > 3500 {
		msg = msg[:3500] + "..."
	}
	n(msg)
}

// Std is the default Logger backed by the package-level functions.
type Std struct{}

func (Std) Info(msg string)                 { Info(msg) }
func (Std) Error(context string, err error) { Error(context, err) }
