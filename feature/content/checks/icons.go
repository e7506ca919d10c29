package checks

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path"
	"sort"

	"morphood/core/storage"
	"morphood/feature/content/models"
	"morphood/kitchen/ingredient"

	"github.com/minio/minio-go/v7"
)

// CheckIcons verifies that every identity's icon asset exists in the bucket
// and that the bucket holds no icon assets nothing references anymore. A
// missing bucket or a transport failure is an error; missing objects and
// identities without an authored icon are report entries.
func CheckIcons(ctx context.Context, client storage.Client, bucket, prefix string, identities []*ingredient.Identity) (models.IconReport, error) {
	report := models.IconReport{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return report, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return report, fmt.Errorf("bucket %s does not exist", bucket)
	}

	referenced := make(map[string]struct{}, len(identities))
	for _, def := range identities {
		report.Checked++
		if def.Icon == "" {
			report.Missing = append(report.Missing,
				fmt.Sprintf("%s: no icon authored", def.ID))
			continue
		}

		object := def.Icon
		if prefix != "" {
			object = path.Join(prefix, def.Icon)
		}
		referenced[object] = struct{}{}

		_, err := client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
		if err != nil {
			if storage.IsNotFound(err) {
				report.Missing = append(report.Missing,
					fmt.Sprintf("%s: %s", def.ID, object))
				report.MissingObjects = append(report.MissingObjects, object)
				continue
			}
			return report, fmt.Errorf("failed to stat %s: %w", object, err)
		}
	}

	// Authored icon paths live under icons/ by convention; anything else
	// under that folder is an orphan from a renamed or deleted identity.
	listPrefix := "icons/"
	if prefix != "" {
		listPrefix = path.Join(prefix, "icons") + "/"
	}
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return report, fmt.Errorf("failed to list %s: %w", listPrefix, obj.Err)
		}
		if _, ok := referenced[obj.Key]; !ok {
			report.Orphaned = append(report.Orphaned, obj.Key)
		}
	}
	sort.Strings(report.Orphaned)

	return report, nil
}

// FixIcons uploads a placeholder image to every given object path, so the
// game renders a visible missing-art sprite instead of nothing. Returns the
// number of placeholders uploaded.
func FixIcons(ctx context.Context, client storage.Client, bucket string, objects []string) (int, error) {
	if len(objects) == 0 {
		return 0, nil
	}

	placeholder, err := placeholderPNG()
	if err != nil {
		return 0, err
	}

	uploaded := 0
	for _, object := range objects {
		_, err := client.PutObject(ctx, bucket, object,
			bytes.NewReader(placeholder), int64(len(placeholder)),
			minio.PutObjectOptions{ContentType: "image/png"})
		if err != nil {
			return uploaded, fmt.Errorf("failed to upload placeholder %s: %w", object, err)
		}
		uploaded++
	}
	return uploaded, nil
}

// placeholderPNG encodes a single magenta pixel, the traditional missing-art
// marker.
func placeholderPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, B: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
