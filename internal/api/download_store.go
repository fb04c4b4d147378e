package api

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"sync"
	"time"
)

// downloadTTL 生成结果的下载有效期
const downloadTTL = 10 * time.Minute

type reportDownload struct {
	filePath  string
	runID     string
	expiresAt time.Time
}

type downloadStore struct {
	mu    sync.Mutex
	items map[string]reportDownload
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]reportDownload),
	}
}

func (s *downloadStore) put(filePath, runID string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = newRandomToken(24)
	s.items[token] = reportDownload{
		filePath:  filePath,
		runID:     runID,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

// take 取出并删除下载项（一次性）
func (s *downloadStore) take(token string) (reportDownload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return reportDownload{}, false
	}
	delete(s.items, token)
	return v, true
}

// purgeExpiredLocked 清理过期项及其文件
func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			_ = os.Remove(v.filePath)
			delete(s.items, k)
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
