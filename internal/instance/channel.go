package instance

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"
)

// ChannelName is the fixed name of the hand-off channel.
const ChannelName = "eternalcoin-uri"

// MaxPayload is the largest payload accepted, in bytes.
const MaxPayload = 255

const sendTimeout = time.Second

var (
	// ErrChannelAbsent means no receiver has created the channel.
	ErrChannelAbsent = errors.New("instance channel absent")
	// ErrPayloadTooLarge is returned for payloads over MaxPayload bytes.
	ErrPayloadTooLarge = errors.New("instance payload too large")
	// ErrReceiverActive means another process already owns the channel.
	ErrReceiverActive = errors.New("instance channel already has a receiver")
)

// DefaultPath returns the channel location for the current user:
// $XDG_RUNTIME_DIR, or the temp dir, holding eternalcoin-uri-<uid>.sock.
func DefaultPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%d.sock", ChannelName, unix.Getuid()))
}

// Send delivers payload as one datagram to the receiver at path.
func Send(path, payload string) error {
	if len(payload) > MaxPayload {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}
	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return ErrChannelAbsent
		}
		return fmt.Errorf("open instance channel: %w", err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(sendTimeout)); err != nil {
		return fmt.Errorf("set send deadline: %w", err)
	}
	if _, err := conn.Write([]byte(payload)); err != nil {
		return fmt.Errorf("send on instance channel: %w", err)
	}
	return nil
}

// Receiver is the owning end of the channel.
type Receiver struct {
	path string
	conn *net.UnixConn
	lock *flock.Flock

	closeOnce sync.Once
	closeErr  error
}

// Listen creates the channel at path. A socket left behind by a crashed
// receiver is replaced; a live receiver yields ErrReceiverActive.
func Listen(path string) (*Receiver, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire channel lock: %w", err)
	}
	if !ok {
		return nil, ErrReceiverActive
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = lock.Unlock()
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("listen on socket: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		_ = conn.Close()
		_ = os.Remove(path)
		_ = lock.Unlock()
		return nil, fmt.Errorf("restrict socket permissions: %w", err)
	}
	return &Receiver{path: path, conn: conn, lock: lock}, nil
}

// Path returns the socket location.
func (r *Receiver) Path() string { return r.path }

// Receive blocks for the next payload. After Close it returns net.ErrClosed.
func (r *Receiver) Receive() (string, error) {
	buf := make([]byte, 4096)
	n, _, err := r.conn.ReadFromUnix(buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Close removes the socket and releases the lock so later senders see
// ErrChannelAbsent. It is safe to call more than once.
func (r *Receiver) Close() error {
	r.closeOnce.Do(func() {
		errs := []error{r.conn.Close()}
		if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove socket: %w", err))
		}
		errs = append(errs, r.lock.Unlock())
		r.closeErr = errors.Join(errs...)
	})
	return r.closeErr
}
