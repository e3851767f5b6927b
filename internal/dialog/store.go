package dialog

import "sync"

// Store держит активные сессии добавления товара и накопленные за время
// сценария id сообщений (для последующей зачистки диалога). Всё живёт
// только в памяти процесса: потерянная при рестарте сессия — приемлемо.
type Store struct {
	mu          sync.Mutex
	sessions    map[int64]*Session
	trails      map[int64][]int
	deleteLists map[int64][]int
}

func NewStore() *Store {
	return &Store{
		sessions:    make(map[int64]*Session),
		trails:      make(map[int64][]int),
		deleteLists: make(map[int64][]int),
	}
}

// Start создаёт свежую сессию, затирая незавершённую, если была.
func (s *Store) Start(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := NewSession()
	s.sessions[userID] = sess
	return sess
}

// Get возвращает активную сессию или nil — обработчики текста и фото
// выходят молча, чтобы не мешать обычным покупателям.
func (s *Store) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

// Track запоминает сообщение сценария (и вопросы бота, и ответы админа).
func (s *Store) Track(userID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trails[userID] = append(s.trails[userID], messageID)
}

// End завершает сессию и возвращает накопленные сообщения для удаления.
// Сессия и след очищаются вместе.
func (s *Store) End(userID int64) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	trail := s.trails[userID]
	delete(s.trails, userID)
	return trail
}

// Active сообщает, идёт ли у пользователя сценарий (для тестов и роутинга).
func (s *Store) Active(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	return ok
}

// TrackDeleteList запоминает сообщение со списком «выберите товар для
// удаления», чтобы убрать его после выбора.
func (s *Store) TrackDeleteList(userID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLists[userID] = append(s.deleteLists[userID], messageID)
}

// TakeDeleteList забирает и очищает след списка удаления.
func (s *Store) TakeDeleteList(userID int64) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.deleteLists[userID]
	delete(s.deleteLists, userID)
	return list
}
