package s3_test

import (
	"context"
	"errors"
	"testing"

	"tourbook/config"
	otelMocks "tourbook/infras/otel/mocks"
	"tourbook/infras/s3"
	"tourbook/infras/s3/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "tourbook"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"

	return cfg
}

func TestUploadFileBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjectAPI(ctrl)
	storage := s3.NewWithClient(client, testConfig(), otelMocks.NewOtel())

	client.EXPECT().
		PutObject(gomock.Any(), gomock.Cond(func(in *awsS3.PutObjectInput) bool {
			return aws.ToString(in.Bucket) == "tourbook" &&
				aws.ToString(in.Key) == "excursiones/tour-1/a.png" &&
				aws.ToString(in.ContentType) == "image/png" &&
				aws.ToInt64(in.ContentLength) == 3
		})).
		Return(&awsS3.PutObjectOutput{}, nil)

	url, err := storage.UploadFileBytes(context.Background(), "excursiones/tour-1", "a.png", "image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/excursiones/tour-1/a.png", url)
}

func TestUploadFileBytes_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjectAPI(ctrl)
	storage := s3.NewWithClient(client, testConfig(), otelMocks.NewOtel())

	client.EXPECT().PutObject(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))

	url, err := storage.UploadFileBytes(context.Background(), "excursiones", "a.png", "image/png", nil)
	assert.ErrorContains(t, err, "access denied")
	assert.Empty(t, url)
}

func TestDeleteFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjectAPI(ctrl)
	storage := s3.NewWithClient(client, testConfig(), otelMocks.NewOtel())

	client.EXPECT().
		DeleteObject(gomock.Any(), gomock.Cond(func(in *awsS3.DeleteObjectInput) bool {
			return aws.ToString(in.Key) == "excursiones/tour-1/a.png"
		})).
		Return(&awsS3.DeleteObjectOutput{}, nil)

	require.NoError(t, storage.DeleteFile(context.Background(), "excursiones/tour-1/a.png"))
}

func TestGetObjectKeyFromURL(t *testing.T) {
	storage := s3.NewWithClient(nil, testConfig(), otelMocks.NewOtel())

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.example.com/excursiones/x/a.png", want: "excursiones/x/a.png"},
		{name: "api endpoint", url: "https://s3.example.com/tourbook/excursiones/x/a.png", want: "excursiones/x/a.png"},
		{name: "foreign url", url: "https://images.unsplash.com/photo.jpg", want: ""},
		{name: "bare domain", url: "https://cdn.example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.GetObjectKeyFromURL(tt.url))
		})
	}
}
