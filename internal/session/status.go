package session

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/xonecas/delta/internal/buffer"
)

var errnoStatus = map[syscall.Errno]string{
	syscall.ENOENT:  "No such file or directory",
	syscall.EINTR:   "Interrupted system call",
	syscall.EIO:     "I/O error",
	syscall.EAGAIN:  "Try again",
	syscall.EACCES:  "Permission denied",
	syscall.EPERM:   "Permission denied",
	syscall.EBUSY:   "Resource busy",
	syscall.EISDIR:  "Is a directory",
	syscall.ETXTBSY: "Text file busy",
	syscall.EFBIG:   "File too large",
	syscall.ENOSPC:  "No space left on device",
	syscall.EROFS:   "Read-only file system",
}

// StatusFor returns the short human-readable reason shown in the status area
// for a failed file operation.
func StatusFor(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, buffer.ErrTooLarge) {
		return "File too large"
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if msg, ok := errnoStatus[errno]; ok {
			return msg
		}
		return fmt.Sprintf("Error %d, consult internet", int(errno))
	}
	return err.Error()
}
