package util

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// PostNotify 将通知内容推给外部的邮件webhook，最多投递一次，失败由调用方记录日志后丢弃
func PostNotify(url string, payload interface{}, timeout time.Duration) error {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return err
	}
	client := &http.Client{
		Timeout: timeout,
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("webhook返回非成功状态码：%d", resp.StatusCode)
	}
	return nil
}
