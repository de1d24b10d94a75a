package service

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/Aashish23092/credit-report-analyzer/service/mocks"
)

type fakePDF struct {
	text    string
	textErr error
	images  []image.Image
	imgErr  error
}

func (f *fakePDF) ExtractText([]byte) (string, error)          { return f.text, f.textErr }
func (f *fakePDF) ExtractImages([]byte) ([]image.Image, error) { return f.images, f.imgErr }

func TestExtractTextPlain(t *testing.T) {
	e := NewTextExtractor(&fakePDF{}, nil, nil)

	text, err := e.ExtractText(context.Background(), "notes.TXT", []byte("기업명 : 한빛"))
	require.NoError(t, err)
	assert.Equal(t, "기업명 : 한빛", text)

	_, err = e.ExtractText(context.Background(), "bad.txt", []byte{0xff, 0xfe})
	assert.Error(t, err)
}

func TestExtractTextEUCKR(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String("세부신용공여 현황\n국민은행 대출채권 30")
	require.NoError(t, err)

	text, err := NewTextExtractor(&fakePDF{}, nil, nil).ExtractText(context.Background(), "export.txt", []byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, "세부신용공여 현황\n국민은행 대출채권 30", text)
}

func TestExtractTextHTML(t *testing.T) {
	e := NewTextExtractor(&fakePDF{}, nil, nil)
	html := `<html><head><title>t</title><style>p{}</style></head><body>
<h1>기업종합보고서</h1>
<table><tr><td>기업명</td><td>: 한빛정밀</td></tr><tr><td>매출액</td><td>12,500 백만원</td></tr></table>
<script>var x = 1;</script>
</body></html>`

	text, err := e.ExtractText(context.Background(), "report.html", []byte(html))
	require.NoError(t, err)

	assert.Contains(t, text, "기업종합보고서")
	assert.Contains(t, text, "기업명 : 한빛정밀")
	assert.Contains(t, text, "매출액 12,500 백만원")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "p{}")
}

func TestExtractTextPDFWithTextLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ocr := mocks.NewMockImageOCR(ctrl)

	e := NewTextExtractor(&fakePDF{text: "세부신용공여 국민은행 대출채권 30 백만원"}, ocr, nil)

	text, err := e.ExtractText(context.Background(), "credit.pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "세부신용공여 국민은행 대출채권 30 백만원", text)
}

func TestExtractTextScannedPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ocr := mocks.NewMockImageOCR(ctrl)

	page1 := image.NewGray(image.Rect(0, 0, 1, 1))
	page2 := image.NewGray(image.Rect(0, 0, 2, 2))
	gomock.InOrder(
		ocr.EXPECT().ExtractTextFromImage(page1).Return("담보기록", nil),
		ocr.EXPECT().ExtractTextFromImage(page2).Return("", errors.New("blurry")),
	)

	e := NewTextExtractor(&fakePDF{text: " ", images: []image.Image{page1, page2}}, ocr, nil)

	text, err := e.ExtractText(context.Background(), "scan.pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "담보기록\n", text)
}

func TestExtractTextUnreadablePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ocr := mocks.NewMockImageOCR(ctrl)

	e := NewTextExtractor(&fakePDF{textErr: errors.New("malformed"), imgErr: errors.New("no images")}, ocr, nil)

	_, err := e.ExtractText(context.Background(), "broken.pdf", nil)
	assert.ErrorContains(t, err, "malformed")
}

func TestExtractTextImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ocr := mocks.NewMockImageOCR(ctrl)
	ocr.EXPECT().ExtractTextFromBytes([]byte("jpeg")).Return("보증잔액", nil)

	e := NewTextExtractor(&fakePDF{}, ocr, nil)

	text, err := e.ExtractText(context.Background(), "page.jpg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "보증잔액", text)
}

func TestExtractTextUnsupported(t *testing.T) {
	e := NewTextExtractor(&fakePDF{}, nil, nil)

	_, err := e.ExtractText(context.Background(), "sheet.xlsx", nil)
	assert.Error(t, err)
}
