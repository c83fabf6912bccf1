package model

import "encoding/json"

// ClusterSummary is the denormalized view of a cluster the backend embeds into ticket details. The
// typed fields are for reading. A summary decoded from JSON encodes back to exactly the object it
// was decoded from, including keys without a field here.
type ClusterSummary struct {
	// required: true
	ID                     uint   `json:"id"`
	Name                   string `json:"name"`
	Alias                  string `json:"alias,omitempty"`
	ImmuteDomain           string `json:"immute_domain,omitempty"`
	ClusterType            string `json:"cluster_type,omitempty"`
	BkBizID                uint   `json:"bk_biz_id"`
	BkCloudID              uint   `json:"bk_cloud_id"`
	DBModuleID             uint   `json:"db_module_id"`
	MajorVersion           string `json:"major_version,omitempty"`
	Region                 string `json:"region,omitempty"`
	DisasterToleranceLevel string `json:"disaster_tolerance_level,omitempty"`

	raw json.RawMessage
}

func (c *ClusterSummary) UnmarshalJSON(data []byte) error {
	type fields ClusterSummary
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = ClusterSummary(f)
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (c ClusterSummary) MarshalJSON() ([]byte, error) {
	if c.raw != nil {
		return c.raw, nil
	}
	type fields ClusterSummary
	return json.Marshal(fields(c))
}

// DetailClusters indexes cluster summaries by cluster id. On the wire the keys are stringified ids.
type DetailClusters map[uint]ClusterSummary

// Resolve returns the summaries of the given cluster ids in the same order. An id without a
// summary yields a nil entry.
func (d DetailClusters) Resolve(ids []uint) []*ClusterSummary {
	clusters := make([]*ClusterSummary, len(ids))
	for i, id := range ids {
		if cluster, ok := d[id]; ok {
			clusters[i] = &cluster
		}
	}
	return clusters
}
