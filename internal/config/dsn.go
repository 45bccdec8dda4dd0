package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DSNValue returns the MySQL DSN, assembling one from the structured
// database config when no raw DSN was provided.
func (c *AppConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}
	return c.Database.formatDSN()
}

func (d DatabaseRuntimeConfig) formatDSN() string {
	host := strings.TrimSpace(d.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := d.Port
	if port == 0 {
		port = defaultDBPort
	}

	loc, err := time.LoadLocation(strings.TrimSpace(d.Loc))
	if err != nil || d.Loc == "" || strings.EqualFold(d.Loc, "local") {
		loc = time.Local
	}

	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	mc.User = strings.TrimSpace(d.User)
	mc.Passwd = d.Password
	mc.DBName = strings.TrimSpace(d.Name)
	mc.ParseTime = d.ParseTime
	mc.Loc = loc

	params := map[string]string{}
	charset := strings.TrimSpace(d.Charset)
	if charset == "" {
		charset = defaultDBCharset
	}
	params["charset"] = charset
	for k, v := range d.Params {
		key := strings.TrimSpace(k)
		value := strings.TrimSpace(v)
		if key != "" && value != "" {
			params[key] = value
		}
	}
	mc.Params = params

	return mc.FormatDSN()
}
