package util

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/go-playground/validator/v10"

	"tranhart-io/api/pkg/models"
)

var validate = validator.New()

func init_cloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := LoadEnvFor("CLOUDINARY_API_SECRET")

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return &cloudinary.Cloudinary{}, err
	}

	return cld, nil
}

func ImageUploadHelper(input interface{}) (uploader.UploadResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := init_cloudinary()
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadFolder := LoadEnvFor("CLOUDINARY_UPLOAD_FOLDER")
	uploadRes, err := cld.Upload.Upload(ctx, input, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return *uploadRes, nil
}

// FileUpload pushes a multipart image to Cloudinary and returns upload
// metadata including the secure URL stored on products and configs.
func FileUpload(file models.File) (uploader.UploadResult, error) {
	err := validate.Struct(file)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadRes, err := ImageUploadHelper(file.File)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return uploadRes, nil
}

func DestroyMedia(publicId string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := init_cloudinary()
	if err != nil {
		return "", err
	}

	deleteResult, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicId})
	if err != nil {
		return "", err
	}

	return deleteResult.Result, nil
}
