package settlement

import (
	"context"
	"sort"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/chain"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// authorStats summarizes the blocks of one author inside a term.
type authorStats struct {
	reward *uint256.Int
	// authored counts blocks; missedWhileAuthoring sums the missed signers listed in them.
	authored             uint64
	missedWhileAuthoring uint64
}

// closeTerm pays the validators of the term ending at block and releases deposits of
// addresses that left the candidate and jailed sets.
func (e *Engine) closeTerm(
	ctx context.Context,
	repo Repository,
	l *ledger,
	block *chain.Block,
	parent *model.Block,
	term *chain.TermMetadata,
) (err error) {
	started := time.Now()
	defer func() {
		if e.metrics != nil {
			e.metrics.ObserveTermClose(err, started)
		}
	}()

	from := term.LastTermFinishedBlockNumber + 1
	to := block.Number
	blocks, err := repo.BlocksInRange(ctx, from, to)
	if err != nil {
		return errors.Wrapf(err, "blocks of term [%d, %d]", from, to)
	}
	totalBlocks := to - from + 1

	stats := make(map[string]*authorStats)
	for _, b := range blocks {
		s, ok := stats[b.Author]
		if !ok {
			s = &authorStats{reward: new(uint256.Int)}
			stats[b.Author] = s
		}
		reward, err := model.Uint256FromDecimal(b.IntermediateRewards)
		if err != nil {
			return errors.Wrapf(err, "intermediate rewards of %d", b.Number)
		}
		s.reward.Add(s.reward, reward)
		s.authored++
		s.missedWhileAuthoring += uint64(len(b.MissedSignersOfPrev))
	}

	bannedNow, err := e.stake.Banned(ctx, block.Number)
	if err != nil {
		return errors.Wrapf(err, "banned at %d", block.Number)
	}
	bannedBefore, err := e.stake.Banned(ctx, term.LastTermFinishedBlockNumber)
	if err != nil {
		return errors.Wrapf(err, "banned at %d", term.LastTermFinishedBlockNumber)
	}
	banned := difference(bannedNow, bannedBefore)

	validators, err := e.stake.Validators(ctx, parent.Number)
	if err != nil {
		return errors.Wrapf(err, "validators at %d", parent.Number)
	}

	pool := new(uint256.Int)
	for address := range banned {
		if s, ok := stats[address]; ok {
			pool.Add(pool, s.reward)
		}
	}

	net := make(map[string]*uint256.Int)
	isValidator := make(map[string]struct{}, len(validators))
	for _, v := range validators {
		isValidator[v.Address] = struct{}{}
		if _, ok := banned[v.Address]; ok {
			continue
		}
		reward := new(uint256.Int)
		if s, ok := stats[v.Address]; ok {
			reward = s.reward
		}
		// blocks spans [from, to] but each one reports precommits on its parent, so the
		// votes counted are those on [from-1, to-1].
		p := penalty(reward, notVoted(blocks, v.Address), totalBlocks)
		pool.Add(pool, p)
		net[v.Address] = new(uint256.Int).Sub(reward, p)
	}
	for address, s := range stats {
		if _, ok := isValidator[address]; ok {
			continue
		}
		if _, ok := banned[address]; ok {
			continue
		}
		net[address] = new(uint256.Int).Set(s.reward)
	}

	extra := additionalRewards(pool, validators, banned, stats)

	addresses := make([]string, 0, len(net))
	for address := range net {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	for _, address := range addresses {
		l.credit(address, sum(net[address], extra[address]), model.ReasonValidator, "")
	}

	if err := e.releaseDeposits(ctx, l, parent.Number, block.Number); err != nil {
		return err
	}

	e.logger.Info("term closed",
		zap.Uint64("block", block.Number),
		zap.Uint64("from", from),
		zap.Int("validators", len(validators)),
		zap.Int("banned", len(banned)),
		zap.String("penalty_pool", pool.Dec()))
	return nil
}

// notVoted counts the blocks whose missed-signer list names address. The list of block b
// describes the precommits on b-1.
func notVoted(blocks []model.Block, address string) uint64 {
	var n uint64
	for _, b := range blocks {
		if b.Missed(address) {
			n++
		}
	}
	return n
}

// releaseDeposits credits deposits of addresses that were candidates or jailed at before
// and are neither candidates, jailed nor banned at after.
func (e *Engine) releaseDeposits(ctx context.Context, l *ledger, before, after uint64) error {
	prev, err := e.deposits(ctx, before, false)
	if err != nil {
		return err
	}
	curr, err := e.deposits(ctx, after, true)
	if err != nil {
		return err
	}
	addresses := make([]string, 0, len(prev))
	for address := range prev {
		if _, ok := curr[address]; !ok {
			addresses = append(addresses, address)
		}
	}
	sort.Strings(addresses)
	for _, address := range addresses {
		l.credit(address, prev[address], model.ReasonDeposit, "")
	}
	return nil
}

// penalty is the part of reward forfeited by a validator that missed notVoted of
// totalBlocks precommits.
func penalty(reward *uint256.Int, notVoted, totalBlocks uint64) *uint256.Int {
	if totalBlocks == 0 || notVoted == 0 || reward.IsZero() {
		return new(uint256.Int)
	}
	nv := uint256.NewInt(notVoted)
	total := uint256.NewInt(totalBlocks)
	denominator := new(uint256.Int).Mul(uint256.NewInt(10), total)

	var p *uint256.Int
	switch {
	case notVoted*10 <= totalBlocks*3:
		// reward * nv * 3 / (10 * total)
		p = new(uint256.Int).Mul(reward, nv)
		p.Mul(p, uint256.NewInt(3))
	case notVoted*2 <= totalBlocks:
		// (reward * nv * 48 - reward * 15 * total) / (10 * total), floored at zero
		plus := new(uint256.Int).Mul(reward, nv)
		plus.Mul(plus, uint256.NewInt(48))
		minus := new(uint256.Int).Mul(reward, total)
		minus.Mul(minus, uint256.NewInt(15))
		if !plus.Gt(minus) {
			return new(uint256.Int)
		}
		p = plus.Sub(plus, minus)
	case notVoted*1000 <= totalBlocks*667:
		// (reward * nv * 6 + reward * 6 * total) / (10 * total)
		a := new(uint256.Int).Mul(reward, nv)
		a.Mul(a, uint256.NewInt(6))
		b := new(uint256.Int).Mul(reward, total)
		b.Mul(b, uint256.NewInt(6))
		p = a.Add(a, b)
	default:
		return new(uint256.Int).Set(reward)
	}
	p.Div(p, denominator)
	if p.Gt(reward) {
		return new(uint256.Int).Set(reward)
	}
	return p
}

// additionalRewards splits pool over validator groups ordered by their missed-signer ratio
// while authoring, best first. Each group takes pool/groupsLeft split evenly among its
// members; what floor division leaves over goes to the first member of the best group.
func additionalRewards(
	pool *uint256.Int,
	validators []chain.Validator,
	banned map[string]struct{},
	stats map[string]*authorStats,
) map[string]*uint256.Int {
	extra := make(map[string]*uint256.Int)
	if pool.IsZero() {
		return extra
	}

	type candidate struct {
		address string
		stats   *authorStats
	}
	var eligible []candidate
	for _, v := range validators {
		if _, ok := banned[v.Address]; ok {
			continue
		}
		s, ok := stats[v.Address]
		if !ok || s.authored == 0 {
			continue
		}
		eligible = append(eligible, candidate{address: v.Address, stats: s})
	}
	if len(eligible) == 0 {
		return extra
	}

	less := func(a, b *authorStats) bool {
		return a.missedWhileAuthoring*b.authored < b.missedWhileAuthoring*a.authored
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if less(eligible[i].stats, eligible[j].stats) {
			return true
		}
		if less(eligible[j].stats, eligible[i].stats) {
			return false
		}
		return eligible[i].address < eligible[j].address
	})

	var groups [][]string
	for i, c := range eligible {
		if i == 0 || less(eligible[i-1].stats, c.stats) {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], c.address)
	}

	remaining := new(uint256.Int).Set(pool)
	for i, group := range groups {
		groupsLeft := uint256.NewInt(uint64(len(groups) - i))
		share := new(uint256.Int).Div(remaining, groupsLeft)
		each := new(uint256.Int).Div(share, uint256.NewInt(uint64(len(group))))
		if each.IsZero() {
			continue
		}
		for _, address := range group {
			extra[address] = new(uint256.Int).Set(each)
			remaining.Sub(remaining, each)
		}
	}
	if !remaining.IsZero() {
		first := groups[0][0]
		extra[first] = sum(extra[first], remaining)
	}
	return extra
}

func difference(a, b []string) map[string]struct{} {
	exclude := make(map[string]struct{}, len(b))
	for _, x := range b {
		exclude[x] = struct{}{}
	}
	out := make(map[string]struct{})
	for _, x := range a {
		if _, ok := exclude[x]; !ok {
			out[x] = struct{}{}
		}
	}
	return out
}
