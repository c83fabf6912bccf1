package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-openapi/runtime"
)

const passwordPolicyPath = "/apis/conf/password_policy"

type PasswordPolicy struct {
	ID   int                `json:"id,omitempty"`
	Name string             `json:"name"`
	Rule PasswordPolicyRule `json:"rule"`
}

type PasswordPolicyRule struct {
	MaxLength             int                   `json:"max_length"`
	MinLength             int                   `json:"min_length"`
	SymbolsAllowed        string                `json:"symbols_allowed"`
	IncludeRule           IncludeRule           `json:"include_rule"`
	ExcludeContinuousRule ExcludeContinuousRule `json:"exclude_continuous_rule"`
}

type IncludeRule struct {
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
}

type ExcludeContinuousRule struct {
	Limit     int  `json:"limit"`
	Letters   bool `json:"letters"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
	Keyboards bool `json:"keyboards"`
	Repeats   bool `json:"repeats"`
}

type PasswordStrength struct {
	IsStrength         bool            `json:"is_strength"`
	PasswordVerifyInfo map[string]bool `json:"password_verify_info"`
}

// RandomCycle is the crontab password randomization runs on.
type RandomCycle struct {
	Crontab struct {
		Minute     string `json:"minute"`
		Hour       string `json:"hour"`
		DayOfWeek  string `json:"day_of_week"`
		DayOfMonth string `json:"day_of_month"`
	} `json:"crontab"`
}

type AdminPasswordInstance struct {
	IP          string `json:"ip"`
	Port        int    `json:"port"`
	BkCloudID   uint   `json:"bk_cloud_id"`
	ClusterType string `json:"cluster_type"`
	Role        string `json:"role"`
}

type ModifyAdminPasswordRequest struct {
	LockHour     int                     `json:"lock_hour"`
	Password     string                  `json:"password"`
	InstanceList []AdminPasswordInstance `json:"instance_list"`
	IsAsync      bool                    `json:"is_async,omitempty"`
}

type QueryAdminPasswordRequest struct {
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
	BeginTime string `json:"begin_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Instances string `json:"instances,omitempty"`
	DBType    string `json:"db_type,omitempty"`
}

type AdminPassword struct {
	ID          int    `json:"id"`
	IP          string `json:"ip"`
	Port        int    `json:"port"`
	BkCloudID   uint   `json:"bk_cloud_id"`
	ClusterType string `json:"cluster_type"`
	Role        string `json:"role"`
	Password    string `json:"password"`
	Component   string `json:"component"`
	LockUntil   string `json:"lock_until"`
	Operator    string `json:"operator"`
	UpdateTime  string `json:"update_time"`
}

type AdminPasswordResult struct {
	BkCloudID   uint   `json:"bk_cloud_id"`
	ClusterType string `json:"cluster_type"`
	Instances   []struct {
		Role      string `json:"role"`
		Addresses []struct {
			IP   string `json:"ip"`
			Port int    `json:"port"`
		} `json:"addresses"`
	} `json:"instances"`
}

type AsyncModifyResult struct {
	Status  string                `json:"status"`
	Error   string                `json:"error,omitempty"`
	Success []AdminPasswordResult `json:"success,omitempty"`
	Fail    []AdminPasswordResult `json:"fail,omitempty"`
	Result  bool                  `json:"result,omitempty"`
}

type PublicKey struct {
	Content     string `json:"content"`
	Description string `json:"description"`
	Name        string `json:"name"`
}

func queryParam(name string, values ...string) param {
	return func(r runtime.ClientRequest) error {
		if len(values) == 0 || values[0] == "" {
			return nil
		}
		return r.SetQueryParam(name, values...)
	}
}

func (c *Client) GetPasswordPolicy(ctx context.Context, name string) (PasswordPolicy, error) {
	return submit[PasswordPolicy](ctx, c, operation{
		id:     "getPasswordPolicy",
		method: http.MethodGet,
		path:   passwordPolicyPath + "/get_password_policy/",
		params: queryParam("name", name),
	})
}

// UpdatePasswordPolicy stores policy. If reset is true the passwords affected by the policy are
// regenerated.
func (c *Client) UpdatePasswordPolicy(ctx context.Context, policy PasswordPolicy, reset bool) error {
	_, err := submit[any](ctx, c, operation{
		id:     "updatePasswordPolicy",
		method: http.MethodPost,
		path:   passwordPolicyPath + "/update_password_policy/",
		params: bodyParam(struct {
			PasswordPolicy
			Reset bool `json:"reset"`
		}{policy, reset}),
	})
	return err
}

func (c *Client) QueryRandomCycle(ctx context.Context) (RandomCycle, error) {
	return submit[RandomCycle](ctx, c, operation{
		id:     "queryRandomCycle",
		method: http.MethodGet,
		path:   passwordPolicyPath + "/query_random_cycle/",
	})
}

func (c *Client) ModifyRandomCycle(ctx context.Context, cycle RandomCycle) error {
	_, err := submit[any](ctx, c, operation{
		id:     "modifyRandomCycle",
		method: http.MethodPost,
		path:   passwordPolicyPath + "/modify_random_cycle/",
		params: bodyParam(cycle),
	})
	return err
}

// GetRandomPassword returns a password satisfying the policy of securityType. An empty
// securityType uses the backend's default policy.
func (c *Client) GetRandomPassword(ctx context.Context, securityType string) (string, error) {
	password, err := submit[struct {
		Password string `json:"password"`
	}](ctx, c, operation{
		id:     "getRandomPassword",
		method: http.MethodGet,
		path:   passwordPolicyPath + "/get_random_password/",
		params: queryParam("security_type", securityType),
	})
	return password.Password, err
}

// ModifyAdminPassword changes the admin password of instances. It returns the id of the backend
// task when the change is asynchronous.
func (c *Client) ModifyAdminPassword(ctx context.Context, request ModifyAdminPasswordRequest) (string, error) {
	return submit[string](ctx, c, operation{
		id:     "modifyAdminPassword",
		method: http.MethodPost,
		path:   passwordPolicyPath + "/modify_admin_password/",
		params: bodyParam(request),
	})
}

func (c *Client) QueryAdminPassword(ctx context.Context, request QueryAdminPasswordRequest) (ListBase[AdminPassword], error) {
	return submit[ListBase[AdminPassword]](ctx, c, operation{
		id:     "queryAdminPassword",
		method: http.MethodPost,
		path:   passwordPolicyPath + "/query_admin_password/",
		params: bodyParam(request),
	})
}

func (c *Client) QueryAsyncModifyResult(ctx context.Context, rootID string) (AsyncModifyResult, error) {
	return submit[AsyncModifyResult](ctx, c, operation{
		id:     "queryAsyncModifyResult",
		method: http.MethodPost,
		path:   passwordPolicyPath + "/query_async_modify_result/",
		params: bodyParam(map[string]string{"root_id": rootID}),
	})
}

func (c *Client) VerifyPasswordStrength(ctx context.Context, securityType, password string) (PasswordStrength, error) {
	return submit[PasswordStrength](ctx, c, operation{
		id:     "verifyPasswordStrength",
		method: http.MethodPost,
		path:   passwordPolicyPath + "/verify_password_strength/",
		params: bodyParam(map[string]string{"security_type": securityType, "password": password}),
	})
}

func (c *Client) GetRSAPublicKeys(ctx context.Context, names ...string) ([]PublicKey, error) {
	return submit[[]PublicKey](ctx, c, operation{
		id:     "getRSAPublicKeys",
		method: http.MethodPost,
		path:   "/apis/core/encrypt/fetch_public_keys/",
		params: bodyParam(map[string][]string{"names": names}),
	})
}

func itoa(i uint) string {
	return strconv.FormatUint(uint64(i), 10)
}
