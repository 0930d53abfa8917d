package detection

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/utils/anthropic"
	"bestbefore-backend/internal/utils/storage"
	"bestbefore-backend/pkg/inventory"
	"bestbefore-backend/pkg/reconcile"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	detectionMaxTokens = 500

	detectionPrompt = `Identify every fruit and vegetable in this image and count them. Respond with ONLY a JSON object mapping each produce name to its count, for example: {"apple": 3, "banana": 2}. Use lowercase singular names. If no produce is visible respond with {}.`
)

// nameCountPattern recovers "name: 3" pairs from a reply that failed to
// decode as JSON.
var nameCountPattern = regexp.MustCompile(`([a-zA-Z]+)\s*:\s*(\d+)`)

type (
	DetectionService interface {
		// DetectProduce classifies the submitted images, resolves storage
		// advice for every identified produce type and inserts the results
		// into the caller's inventory. Images that fail to decode or to
		// classify are skipped; the call only errors when no image could
		// be processed at all.
		DetectProduce(ctx context.Context, userID string, req domain.DetectProduceRequest) (domain.DetectProduceResponse, error)
	}

	detectionService struct {
		claude           *anthropic.Client
		adviceProvider   reconcile.AdviceProvider
		inventoryService inventory.InventoryService
		awsS3            storage.AwsS3
	}
)

func NewDetectionService(
	claude *anthropic.Client,
	adviceProvider reconcile.AdviceProvider,
	inventoryService inventory.InventoryService,
	awsS3 storage.AwsS3,
) DetectionService {
	return &detectionService{
		claude:           claude,
		adviceProvider:   adviceProvider,
		inventoryService: inventoryService,
		awsS3:            awsS3,
	}
}

func (s *detectionService) DetectProduce(ctx context.Context, userID string, req domain.DetectProduceRequest) (domain.DetectProduceResponse, error) {
	images := req.Images
	if len(images) == 0 && req.Image != "" {
		images = []string{req.Image}
	}
	if len(images) == 0 {
		return domain.DetectProduceResponse{}, domain.ErrNoImagesProvided
	}
	if !s.claude.Configured() {
		return domain.DetectProduceResponse{}, domain.ErrDetectionNotConfigured
	}

	// A bad frame never fails the batch; it is logged and skipped so the
	// remaining images still get classified.
	counts := make(map[string]int)
	processed := 0
	decodeFailures := 0
	for _, image := range images {
		mediaType, data, err := decodeImagePayload(image)
		if err != nil {
			log.Printf("detection: skipping undecodable image: %v", err)
			decodeFailures++
			continue
		}

		s.archiveFrame(data, mediaType)

		reply, err := s.claude.CompleteWithImage(ctx, detectionPrompt, mediaType, data, detectionMaxTokens)
		if err != nil {
			log.Printf("detection: model call failed, skipping image: %v", err)
			continue
		}
		processed++

		for name, count := range parseProduceCounts(reply) {
			counts[name] += count
		}
	}

	if processed == 0 {
		if decodeFailures == len(images) {
			return domain.DetectProduceResponse{}, domain.ErrInvalidImageEncoding
		}
		return domain.DetectProduceResponse{}, domain.ErrDetectionModelFailed
	}

	if len(counts) == 0 {
		return domain.DetectProduceResponse{
			Success:       true,
			Detections:    []any{},
			ProduceCounts: counts,
			TotalItems:    0,
			AddedItems:    []domain.DetectedItem{},
		}, nil
	}

	store, err := s.inventoryService.StoreFor(ctx, userID)
	if err != nil {
		return domain.DetectProduceResponse{}, err
	}

	total := 0
	added := make([]domain.DetectedItem, 0, len(counts))
	for name, count := range counts {
		total += count

		adv, err := s.adviceProvider.AdviceForItem(ctx, name)
		if err != nil {
			adv = domain.DefaultStorageAdvice(name)
		}
		days := adv.DaysFor(adv.Recommended)

		item := store.AddIdentifiedItem(name, strconv.Itoa(count), days)
		if adv.Recommended != item.Location {
			store.UpdateItem(item.ID, domain.InventoryItemPatch{Location: &adv.Recommended})
		}

		added = append(added, domain.DetectedItem{
			Name:         inventory.CapitalizeName(name),
			Count:        count,
			FoodType:     adv.FoodType,
			Location:     adv.Recommended,
			DurationDays: days,
			Source:       adv.Source,
		})
	}

	if err := s.inventoryService.Persist(ctx, userID); err != nil {
		return domain.DetectProduceResponse{}, err
	}

	return domain.DetectProduceResponse{
		Success:       true,
		Detections:    []any{},
		ProduceCounts: counts,
		TotalItems:    total,
		AddedItems:    added,
	}, nil
}

// archiveFrame keeps a copy of the submitted frame for model QA. Best
// effort only; an upload failure never blocks detection.
func (s *detectionService) archiveFrame(base64Data, mediaType string) {
	if s.awsS3 == nil {
		return
	}

	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return
	}

	ext := "jpg"
	if parts := strings.Split(mediaType, "/"); len(parts) == 2 {
		ext = parts[1]
	}
	key := fmt.Sprintf("detections/%s.%s", uuid.NewString(), ext)
	if _, err := s.awsS3.UploadBytes(key, raw, mediaType); err != nil {
		log.Printf("detection frame archive failed: %v", err)
	}
}

// decodeImagePayload accepts a raw base64 string or a data URL and returns
// the media type plus the bare base64 body.
func decodeImagePayload(image string) (string, string, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return "", "", domain.ErrInvalidImageEncoding
	}

	mediaType := "image/jpeg"
	if strings.HasPrefix(image, "data:") {
		parts := strings.SplitN(image, ",", 2)
		if len(parts) != 2 {
			return "", "", domain.ErrInvalidImageEncoding
		}
		header := strings.TrimPrefix(parts[0], "data:")
		header = strings.TrimSuffix(header, ";base64")
		if header != "" {
			mediaType = header
		}
		image = parts[1]
	}

	if _, err := base64.StdEncoding.DecodeString(image); err != nil {
		return "", "", domain.ErrInvalidImageEncoding
	}
	return mediaType, image, nil
}

// parseProduceCounts decodes the model's name-to-count object, falling back
// to scraping "name: N" pairs when the reply is not valid JSON.
func parseProduceCounts(reply string) map[string]int {
	counts := make(map[string]int)

	if raw := anthropic.ExtractJSON(reply); raw != "" {
		var decoded map[string]int
		if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
			for name, count := range decoded {
				name = strings.ToLower(strings.TrimSpace(name))
				if name != "" && count > 0 {
					counts[name] += count
				}
			}
			return counts
		}
	}

	for _, match := range nameCountPattern.FindAllStringSubmatch(reply, -1) {
		count, err := strconv.Atoi(match[2])
		if err != nil || count <= 0 {
			continue
		}
		counts[strings.ToLower(match[1])] += count
	}
	return counts
}
