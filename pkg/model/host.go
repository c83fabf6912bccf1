package model

import "encoding/json"

// HostEndpoint identifies a machine targeted by an operation. Like [ClusterSummary] a decoded host
// encodes back to the object it was decoded from.
type HostEndpoint struct {
	BkBizID   uint   `json:"bk_biz_id"`
	BkCloudID uint   `json:"bk_cloud_id"`
	BkHostID  uint   `json:"bk_host_id"`
	IP        string `json:"ip"`
	Port      *int   `json:"port,omitempty"`

	raw json.RawMessage
}

func (h *HostEndpoint) UnmarshalJSON(data []byte) error {
	type fields HostEndpoint
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*h = HostEndpoint(f)
	h.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (h HostEndpoint) MarshalJSON() ([]byte, error) {
	if h.raw != nil {
		return h.raw, nil
	}
	type fields HostEndpoint
	return json.Marshal(fields(h))
}
