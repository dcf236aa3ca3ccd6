package debate_test

import (
	"context"
	"sync"
)

type stubProvider struct {
	mu      sync.Mutex
	prompts []string
	result  string
	err     error
}

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func (s *stubProvider) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

const sampleDebate = `[찬성 측 주장]
- 스마트폰으로 모르는 것을 바로 찾아볼 수 있어요.
- 비상시에 가족에게 연락할 수 있어요.

[반대 측 주장]
- 수업 시간에 집중하기 어려워요.
- 친구들과 직접 대화하는 시간이 줄어들어요.

[토론 포인트]
- 스마트폰 사용 규칙을 어떻게 정할 수 있을까요?
- 학습에 도움이 되는 사용과 방해가 되는 사용은 어떻게 다를까요?

[결론]
- 요약: 양쪽 모두 타당한 이유가 있어요.
- 배운 점: 규칙과 책임이 함께 필요해요.
- 추가 생각해볼 점: 우리 반만의 규칙을 만든다면?
`
