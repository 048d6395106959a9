package demo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

const stopGracePeriod = 5 * time.Second

// Process is a child server started by the demo. It leads its own process
// group so that anything it forks (e.g. the binary built by `go run`) is
// stopped along with it.
type Process struct {
	name     string
	cmd      *exec.Cmd
	done     chan struct{}
	stopOnce sync.Once
}

// StartProcess launches command (program plus args) in dir with extra env
// appended. Output is forwarded to out when non-nil and discarded otherwise.
func StartProcess(name string, command []string, dir string, env []string, out io.Writer) (*Process, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("%s: empty command", name)
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if out != nil {
		cmd.Stdout = out
		cmd.Stderr = out
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	p := &Process{name: name, cmd: cmd, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(p.done)
	}()

	return p, nil
}

// Stop sends SIGTERM to the whole process group, waits up to the grace
// period for the leader to exit, then SIGKILLs whatever is left of the
// group. Safe to call more than once.
func (p *Process) Stop() {
	if p == nil || p.cmd.Process == nil {
		return
	}

	p.stopOnce.Do(func() {
		p.signalGroup(syscall.SIGTERM)

		select {
		case <-p.done:
		case <-time.After(stopGracePeriod):
		}

		// Grandchildren may outlive the leader.
		p.signalGroup(syscall.SIGKILL)
		<-p.done
	})
}

func (p *Process) signalGroup(sig syscall.Signal) {
	err := syscall.Kill(-p.cmd.Process.Pid, sig)
	if err != nil && !errors.Is(err, syscall.ESRCH) {
		_ = p.cmd.Process.Signal(sig)
	}
}
