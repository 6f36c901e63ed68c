package filedb

import (
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
)

// 文件后端的会话只保存在内存中,进程重启后全部失效。
type LoginSessionRepo struct {
	store *Store
}

func NewLoginSessionRepo(store *Store) repository.LoginSessionRepo {
	return &LoginSessionRepo{store: store}
}

func (s *LoginSessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.LoginSession, error) {
	s.store.sessionMu.Lock()
	defer s.store.sessionMu.Unlock()

	session, ok := s.store.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (s *LoginSessionRepo) CreateSession(ctx context.Context, session *model.LoginSession) error {
	s.store.sessionMu.Lock()
	defer s.store.sessionMu.Unlock()

	s.store.sessions[session.SessionID] = session
	return nil
}

func (s *LoginSessionRepo) DeleteBySessionID(ctx context.Context, sessionID string) (int64, error) {
	s.store.sessionMu.Lock()
	defer s.store.sessionMu.Unlock()

	if _, ok := s.store.sessions[sessionID]; !ok {
		return 0, nil
	}
	delete(s.store.sessions, sessionID)
	return 1, nil
}

func (s *LoginSessionRepo) DeleteAllByUserID(ctx context.Context, userID uint64) ([]string, error) {
	s.store.sessionMu.Lock()
	defer s.store.sessionMu.Unlock()

	ids := make([]string, 0)
	for id, session := range s.store.sessions {
		if session.UserID == userID {
			ids = append(ids, id)
			delete(s.store.sessions, id)
		}
	}
	return ids, nil
}
