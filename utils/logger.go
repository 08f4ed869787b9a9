package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// OpenDailyLogFile mở (hoặc tạo) file log theo ngày trong thư mục dir, vd. logs/app-2025-09-30.log
func OpenDailyLogFile(dir string, now time.Time) (*os.File, error) {
	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", now.Format("2006-01-02")))
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// LogOutput trả về writer cho logger: stdout, kèm file log theo ngày nếu dir khác rỗng.
// closeFn đóng file (nếu có).
func LogOutput(dir string, now time.Time) (w io.Writer, closeFn func() error, err error) {
	if dir == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := OpenDailyLogFile(dir, now)
	if err != nil {
		return nil, nil, err
	}
	return io.MultiWriter(os.Stdout, f), f.Close, nil
}
