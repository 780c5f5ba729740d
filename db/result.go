package db

import "database/sql"

type Result struct {
	err error
	res sql.Result
}

// LastInsertId 对 database/sql 的 Result 做一层拦截
// pgx 不支持 LastInsertId，这时返回驱动的错误
func (r Result) LastInsertId() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.res == nil {
		return 0, nil
	}
	return r.res.LastInsertId()
}

func (r Result) RowsAffected() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.res == nil {
		return 0, nil
	}
	return r.res.RowsAffected()
}

func (r Result) Err() error {
	return r.err
}
