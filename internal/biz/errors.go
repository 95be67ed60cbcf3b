package biz

import (
	"errors"
	"fmt"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/iWorld-y/rokey_news/pkg/source"
)

var (
	// ErrNewsKeyMissing 没有可用的新闻 key
	ErrNewsKeyMissing = kerrors.BadRequest("NEWS_KEY_MISSING", "API 키가 설정되지 않았습니다. 설정에서 NewsAPI 키를 입력해주세요.")
	// ErrLLMKeyMissing 没有可用的大模型 key
	ErrLLMKeyMissing = kerrors.BadRequest("LLM_KEY_MISSING", "OpenAI API 키가 설정되지 않았습니다. 설정에서 입력해주세요.")
	// ErrInvalidPageSize page_size 越界
	ErrInvalidPageSize = kerrors.BadRequest("INVALID_PAGE_SIZE", "page_size 값이 허용 범위를 벗어났습니다.")
)

// newsError 把新闻来源错误映射为对外错误：提供方错误 400，超时 504，其余 500
func newsError(err error) error {
	var apiErr *source.APIError
	switch {
	case errors.Is(err, source.ErrMissingKey):
		return ErrNewsKeyMissing
	case errors.As(err, &apiErr):
		return kerrors.BadRequest("NEWS_PROVIDER_ERROR", apiErr.Message).WithCause(err)
	case source.IsTimeout(err):
		return kerrors.GatewayTimeout("NEWS_TIMEOUT", "뉴스 서버 응답 시간 초과").WithCause(err)
	default:
		return kerrors.InternalServer("NEWS_NETWORK_ERROR", fmt.Sprintf("네트워크 오류: %v", err)).WithCause(err)
	}
}
