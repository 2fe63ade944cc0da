package handler_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type formFile struct {
	fieldName   string
	fileName    string
	contentType string
	content     []byte
}

func createMultipartRequest(t *testing.T, url string, file *formFile, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.fieldName, file.fileName))
		h.Set("Content-Type", file.contentType)

		part, err := writer.CreatePart(h)
		require.NoError(t, err)

		_, err = part.Write(file.content)
		require.NoError(t, err)
	}

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func regionFields(x, y, w, h int) map[string]string {
	return map[string]string{
		"region[x]":      fmt.Sprint(x),
		"region[y]":      fmt.Sprint(y),
		"region[width]":  fmt.Sprint(w),
		"region[height]": fmt.Sprint(h),
	}
}
