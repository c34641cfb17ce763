// Package explore defines the Explore service wire types and gRPC plumbing.
// Messages travel as JSON (see internal/proto/codec); field names follow the
// snake_case form clients already use.
package explore

type PutDecisionRequest struct {
	ActorUserId     string `json:"actor_user_id,omitempty"`
	RecipientUserId string `json:"recipient_user_id,omitempty"`
	LikedRecipient  bool   `json:"liked_recipient,omitempty"`
}

func (x *PutDecisionRequest) GetActorUserId() string {
	if x != nil {
		return x.ActorUserId
	}
	return ""
}

func (x *PutDecisionRequest) GetRecipientUserId() string {
	if x != nil {
		return x.RecipientUserId
	}
	return ""
}

func (x *PutDecisionRequest) GetLikedRecipient() bool {
	if x != nil {
		return x.LikedRecipient
	}
	return false
}

type PutDecisionResponse struct {
	MutualLikes bool   `json:"mutual_likes,omitempty"`
	MatchId     string `json:"match_id,omitempty"`
}

func (x *PutDecisionResponse) GetMutualLikes() bool {
	if x != nil {
		return x.MutualLikes
	}
	return false
}

func (x *PutDecisionResponse) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

type ListLikedYouRequest struct {
	RecipientUserId string  `json:"recipient_user_id,omitempty"`
	PaginationToken *string `json:"pagination_token,omitempty"`
}

func (x *ListLikedYouRequest) GetRecipientUserId() string {
	if x != nil {
		return x.RecipientUserId
	}
	return ""
}

func (x *ListLikedYouRequest) GetPaginationToken() string {
	if x != nil && x.PaginationToken != nil {
		return *x.PaginationToken
	}
	return ""
}

type ListLikedYouResponse struct {
	Likers              []*ListLikedYouResponse_Liker `json:"likers,omitempty"`
	NextPaginationToken *string                       `json:"next_pagination_token,omitempty"`
}

func (x *ListLikedYouResponse) GetLikers() []*ListLikedYouResponse_Liker {
	if x != nil {
		return x.Likers
	}
	return nil
}

func (x *ListLikedYouResponse) GetNextPaginationToken() string {
	if x != nil && x.NextPaginationToken != nil {
		return *x.NextPaginationToken
	}
	return ""
}

type ListLikedYouResponse_Liker struct {
	ActorId       string `json:"actor_id,omitempty"`
	UnixTimestamp uint64 `json:"unix_timestamp,omitempty"`
}

func (x *ListLikedYouResponse_Liker) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *ListLikedYouResponse_Liker) GetUnixTimestamp() uint64 {
	if x != nil {
		return x.UnixTimestamp
	}
	return 0
}

type CountLikedYouRequest struct {
	RecipientUserId string `json:"recipient_user_id,omitempty"`
}

func (x *CountLikedYouRequest) GetRecipientUserId() string {
	if x != nil {
		return x.RecipientUserId
	}
	return ""
}

type CountLikedYouResponse struct {
	Count uint64 `json:"count,omitempty"`
}

func (x *CountLikedYouResponse) GetCount() uint64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type ListCandidatesRequest struct {
	ActorUserId     string  `json:"actor_user_id,omitempty"`
	PaginationToken *string `json:"pagination_token,omitempty"`
	Limit           uint32  `json:"limit,omitempty"`
}

func (x *ListCandidatesRequest) GetActorUserId() string {
	if x != nil {
		return x.ActorUserId
	}
	return ""
}

func (x *ListCandidatesRequest) GetPaginationToken() string {
	if x != nil && x.PaginationToken != nil {
		return *x.PaginationToken
	}
	return ""
}

func (x *ListCandidatesRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListCandidatesResponse struct {
	Candidates          []*Candidate `json:"candidates,omitempty"`
	NextPaginationToken *string      `json:"next_pagination_token,omitempty"`
}

func (x *ListCandidatesResponse) GetCandidates() []*Candidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

func (x *ListCandidatesResponse) GetNextPaginationToken() string {
	if x != nil && x.NextPaginationToken != nil {
		return *x.NextPaginationToken
	}
	return ""
}

type Candidate struct {
	UserId   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

func (x *Candidate) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Candidate) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *Candidate) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

type ListMatchesRequest struct {
	UserId string `json:"user_id,omitempty"`
	Limit  uint32 `json:"limit,omitempty"`
}

func (x *ListMatchesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListMatchesRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListMatchesResponse struct {
	Matches []*MatchSummary `json:"matches,omitempty"`
}

func (x *ListMatchesResponse) GetMatches() []*MatchSummary {
	if x != nil {
		return x.Matches
	}
	return nil
}

type MatchSummary struct {
	MatchId       string `json:"match_id,omitempty"`
	OtherUserId   string `json:"other_user_id,omitempty"`
	UnixTimestamp uint64 `json:"unix_timestamp,omitempty"`
}

func (x *MatchSummary) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *MatchSummary) GetOtherUserId() string {
	if x != nil {
		return x.OtherUserId
	}
	return ""
}

func (x *MatchSummary) GetUnixTimestamp() uint64 {
	if x != nil {
		return x.UnixTimestamp
	}
	return 0
}

type UnmatchRequest struct {
	RequesterUserId string `json:"requester_user_id,omitempty"`
	MatchId         string `json:"match_id,omitempty"`
}

func (x *UnmatchRequest) GetRequesterUserId() string {
	if x != nil {
		return x.RequesterUserId
	}
	return ""
}

func (x *UnmatchRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

type UnmatchResponse struct{}

type SendMessageRequest struct {
	SenderUserId string `json:"sender_user_id,omitempty"`
	MatchId      string `json:"match_id,omitempty"`
	Body         string `json:"body,omitempty"`
}

func (x *SendMessageRequest) GetSenderUserId() string {
	if x != nil {
		return x.SenderUserId
	}
	return ""
}

func (x *SendMessageRequest) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *SendMessageRequest) GetBody() string {
	if x != nil {
		return x.Body
	}
	return ""
}

type SendMessageResponse struct {
	MessageId     string `json:"message_id,omitempty"`
	UnixTimestamp uint64 `json:"unix_timestamp,omitempty"`
}

func (x *SendMessageResponse) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *SendMessageResponse) GetUnixTimestamp() uint64 {
	if x != nil {
		return x.UnixTimestamp
	}
	return 0
}
