// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/chainkey/account"
	"github.com/bitmark-inc/chainkey/scheme"
	"github.com/bitmark-inc/chainkey/transactionrecord"
	"github.com/bitmark-inc/chainkey/util"
)

// one signed entry of the output
type result struct {
	Index       int                              `json:"index"`
	Transaction transactionrecord.RawTransaction `json:"transaction"`
	Signed      string                           `json:"signed"`
}

type signer struct {
	log         *logger.L
	scheme      scheme.Scheme
	keys        *account.KeyMaterial
	concurrency int
}

// the key material is shared by all workers
func newSigner(s scheme.Scheme, keys *account.KeyMaterial, concurrency int) *signer {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &signer{
		log:         logger.New("signer"),
		scheme:      s,
		keys:        keys,
		concurrency: concurrency,
	}
}

// derive keys from the seed, or from seed and public key
func loadKeys(options *Configuration) (*account.KeyMaterial, error) {
	if "" == options.PublicKey {
		_, keys, err := options.scheme.KeyPair(options.PrivateKey)
		return keys, err
	}

	privateKey, err := util.DecodeHex(options.PrivateKey)
	if nil != err {
		return nil, err
	}
	publicKey, err := util.DecodeHex(options.PublicKey)
	if nil != err {
		return nil, err
	}
	return account.KeyMaterialFromKeys(privateKey, publicKey)
}

// sign all transactions, stopping at the first error
//
// results are in the same order as the input
func (s *signer) signAll(ctx context.Context, transactions []transactionrecord.RawTransaction) ([]result, error) {

	results := make([]result, len(transactions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range transactions {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); nil != err {
				return err
			}

			tx, err := transactions[i].Transaction()
			if nil != err {
				s.log.Errorf("transaction[%d]: %s", i, err)
				return err
			}

			signed, err := s.scheme.Sign(tx, s.keys)
			if nil != err {
				s.log.Errorf("transaction[%d]: sign error: %s", i, err)
				return err
			}

			results[i] = result{
				Index:       i,
				Transaction: tx.Raw(),
				Signed:      signed,
			}
			s.log.Debugf("transaction[%d]: %s", i, signed)
			return nil
		})
	}

	if err := g.Wait(); nil != err {
		return nil, err
	}
	return results, nil
}
