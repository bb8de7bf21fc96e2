package cache

import (
	"testing"
	"time"
)

func TestSetGetDelete(t *testing.T) {
	c := New(time.Minute)
	if c.Get("k") != nil {
		t.Fatal("chave inexistente deve retornar nil")
	}
	c.Set("k", []byte("v"))
	if string(c.Get("k")) != "v" {
		t.Fatal("Get deve retornar o valor gravado")
	}
	c.Delete("k")
	if c.Get("k") != nil {
		t.Fatal("chave removida deve retornar nil")
	}
}

func TestExpiredEntryNotReturned(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("k", []byte("v"))
	time.Sleep(25 * time.Millisecond)
	if c.Get("k") != nil {
		t.Fatal("entrada expirada deve retornar nil")
	}
}
