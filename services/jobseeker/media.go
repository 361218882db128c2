package jobseeker

import (
	"context"
	"errors"
	"os"

	"karkhana/flow"
	"karkhana/services/storage"
	"karkhana/utils"
	"karkhana/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SubmitProfileMedia validates and uploads the profile photo and optional
// intro video, then completes the registration. The video is probed locally
// before any upload happens; a file whose duration cannot be read is
// rejected.
func (s *DefaultJobSeekerService) SubmitProfileMedia(userID string, req ProfileMediaRequest) (*StepResult, error) {
	seeker, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, ErrNotFound
	}
	if req.Photo == nil {
		return nil, ErrProfilePhotoRequired
	}

	errs := validation.Errors{}
	errs.Add("profilePhoto", validation.ProfilePhoto(req.Photo.Size))

	if req.Video != nil {
		duration, err := probeVideoDuration(req.Video.Path)
		if err != nil {
			if errors.Is(err, storage.ErrUnreadableVideo) {
				errs.Add("introVideo", storage.ErrUnreadableVideo.Error())
			} else {
				return nil, err
			}
		} else {
			errs.Add("introVideo", validation.IntroVideo(duration, req.Video.Size))
		}
	}
	if !errs.Empty() {
		return nil, &validation.ValidationError{Fields: errs}
	}

	ctx := context.Background()
	photoID, err := s.Storage.UploadFile(ctx, req.Photo.Path, storage.ProfilePhotoFolder)
	if err != nil {
		return nil, err
	}

	update := bson.M{"profilePhotoId": photoID}
	var videoID string
	if req.Video != nil {
		videoID, err = s.Storage.UploadFile(ctx, req.Video.Path, storage.IntroVideoFolder)
		if err != nil {
			// Keep storage consistent with the aborted submission.
			if delErr := s.Storage.DeleteFile(ctx, photoID); delErr != nil {
				utils.GetLogger().Warn("Failed to clean up uploaded photo", zap.Error(delErr))
			}
			return nil, err
		}
		update["introVideoId"] = videoID
	}

	next := advancedStep(seeker.RegistrationStep, flow.NextJobSeekerStep(flow.StepIntroVideo, seeker.IsFresher))
	update["registrationStep"] = string(next)
	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, err
	}

	result := stepResult(next)
	result.ProfilePhotoURL = s.downloadURL(ctx, "image", photoID)
	if videoID != "" {
		result.IntroVideoURL = s.downloadURL(ctx, "video", videoID)
	}
	return result, nil
}

// downloadURL is best effort; a failure leaves the field empty rather than
// failing a submission that already persisted.
func (s *DefaultJobSeekerService) downloadURL(ctx context.Context, resourceType, publicID string) string {
	url, err := s.Storage.GetDownloadURL(ctx, resourceType, publicID, 0)
	if err != nil {
		utils.GetLogger().Warn("Failed to build media URL", zap.Error(err), zap.String("publicID", publicID))
		return ""
	}
	return url
}

func probeVideoDuration(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return storage.ProbeMP4DurationMillis(f)
}
