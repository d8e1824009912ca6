package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/squaredcircle/booker/booker/game"
)

// BackupService mirrors save slots into a Spaces bucket so a wiped
// database is not a wiped career.
type BackupService struct {
	client *s3.Client
	bucket string
	region string
}

func NewBackupService(spacesKey, spacesSecret, region, bucket string) *BackupService {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		panic(fmt.Sprintf("Unable to load Spaces config: %v", err))
	}

	return &BackupService{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

// Upload pushes one save bundle to the bucket, keyed by slot.
func (s *BackupService) Upload(ctx context.Context, slot int, save *game.SaveGame) error {
	start := time.Now()

	body, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("failed to encode save for backup: %w", err)
	}

	key := backupKey(slot)
	contentType := "application/json"
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload save backup: %w", err)
	}

	slog.Info("Save backed up",
		slog.String("type", "sys"),
		slog.Int("slot", slot),
		slog.Duration("took", time.Since(start)))
	return nil
}

// Download restores one save bundle from the bucket.
func (s *BackupService) Download(ctx context.Context, slot int) (*game.SaveGame, error) {
	key := backupKey(slot)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch save backup: %w", err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read save backup: %w", err)
	}

	var save game.SaveGame
	if err := json.Unmarshal(body, &save); err != nil {
		return nil, fmt.Errorf("failed to decode save backup: %w", err)
	}
	return &save, nil
}

// Delete removes the backup for one slot.
func (s *BackupService) Delete(ctx context.Context, slot int) error {
	key := backupKey(slot)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}

func (s *BackupService) GetBucket() string {
	return s.bucket
}

func (s *BackupService) GetRegion() string {
	return s.region
}

func backupKey(slot int) string {
	return fmt.Sprintf("saves/slot-%d.json", slot)
}
