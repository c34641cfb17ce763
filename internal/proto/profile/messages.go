// Package profile defines the Profile service wire types and gRPC plumbing:
// registration, login, photo upload and blocking.
package profile

type RegisterRequest struct {
	Username  string   `json:"username,omitempty"`
	Password  string   `json:"password,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Locality  string   `json:"locality,omitempty"`
}

func (x *RegisterRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *RegisterRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *RegisterRequest) GetInterests() []string {
	if x != nil {
		return x.Interests
	}
	return nil
}

func (x *RegisterRequest) GetLocality() string {
	if x != nil {
		return x.Locality
	}
	return ""
}

type RegisterResponse struct {
	UserId    string   `json:"user_id,omitempty"`
	ClusterId string   `json:"cluster_id,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

func (x *RegisterResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *RegisterResponse) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *RegisterResponse) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *RegisterResponse) GetInterests() []string {
	if x != nil {
		return x.Interests
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

func (x *LoginRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	UserId    string `json:"user_id,omitempty"`
	ClusterId string `json:"cluster_id,omitempty"`
}

func (x *LoginResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *LoginResponse) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

type UploadPhotoRequest struct {
	UserId    string `json:"user_id,omitempty"`
	Content   []byte `json:"content,omitempty"`
	PhotoType string `json:"photo_type,omitempty"`
}

func (x *UploadPhotoRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadPhotoRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadPhotoRequest) GetPhotoType() string {
	if x != nil {
		return x.PhotoType
	}
	return ""
}

type UploadPhotoResponse struct {
	FingerprintAccepted bool   `json:"fingerprint_accepted,omitempty"`
	PhotoId             string `json:"photo_id,omitempty"`
	Fingerprint         string `json:"fingerprint,omitempty"`
}

func (x *UploadPhotoResponse) GetFingerprintAccepted() bool {
	if x != nil {
		return x.FingerprintAccepted
	}
	return false
}

func (x *UploadPhotoResponse) GetPhotoId() string {
	if x != nil {
		return x.PhotoId
	}
	return ""
}

func (x *UploadPhotoResponse) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

type BlockUserRequest struct {
	BlockerUserId string `json:"blocker_user_id,omitempty"`
	BlockedUserId string `json:"blocked_user_id,omitempty"`
}

func (x *BlockUserRequest) GetBlockerUserId() string {
	if x != nil {
		return x.BlockerUserId
	}
	return ""
}

func (x *BlockUserRequest) GetBlockedUserId() string {
	if x != nil {
		return x.BlockedUserId
	}
	return ""
}

type BlockUserResponse struct {
	MatchRemoved bool `json:"match_removed,omitempty"`
}

func (x *BlockUserResponse) GetMatchRemoved() bool {
	if x != nil {
		return x.MatchRemoved
	}
	return false
}
