package spectest

import (
	"io"
	"os"
	"strings"
	"sync"
)

var stdoutMu sync.Mutex

// CaptureStdout runs main with os.Stdout redirected and returns its exit
// code along with everything it printed.
func CaptureStdout(main func() int) (code int, out string, err error) {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	r, w, err := os.Pipe()
	if err != nil {
		return 0, "", err
	}
	saved := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = saved }()

	done := make(chan string, 1)
	go func() {
		var b strings.Builder
		_, _ = io.Copy(&b, r)
		_ = r.Close()
		done <- b.String()
	}()

	code = main()
	_ = w.Close()
	return code, <-done, nil
}
