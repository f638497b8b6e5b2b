package model

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Diary{},
		&DiaryUser{},
		&Address{},
		&Paper{},
		&Great{},
		&Notice{},
	}
}
