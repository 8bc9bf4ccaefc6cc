package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"backend/utils"
)

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() *RekognitionService {
	return &RekognitionService{client: utils.RekClient()}
}

// RecognizeLabels returns the top labels for a base64-encoded image
func (r *RekognitionService) RecognizeLabels(base64Img string) ([]string, error) {
	idx := strings.Index(base64Img, ";base64,")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+len(";base64,"):])
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}
