// Package safety defines the Safety service wire types and gRPC plumbing.
package safety

type FileReportRequest struct {
	ReporterUserId string `json:"reporter_user_id,omitempty"`
	TargetUserId   string `json:"target_user_id,omitempty"`
	Reason         string `json:"reason,omitempty"`
	Details        string `json:"details,omitempty"`
}

func (x *FileReportRequest) GetReporterUserId() string {
	if x != nil {
		return x.ReporterUserId
	}
	return ""
}

func (x *FileReportRequest) GetTargetUserId() string {
	if x != nil {
		return x.TargetUserId
	}
	return ""
}

func (x *FileReportRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *FileReportRequest) GetDetails() string {
	if x != nil {
		return x.Details
	}
	return ""
}

type FileReportResponse struct {
	Accepted bool   `json:"accepted,omitempty"`
	ReportId string `json:"report_id,omitempty"`
}

func (x *FileReportResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *FileReportResponse) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}
